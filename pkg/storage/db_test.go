package storage

import (
	"testing"
	"time"

	"gsheet-reader/pkg/reader"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := InitDB("")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveSnapshot(t *testing.T) {
	db := newTestDB(t)

	cols := reader.Columns{
		{Label: "A", Type: reader.TypeDate},
		{Label: "B", Type: reader.TypeInteger},
		{Label: "C", Type: reader.TypeText},
	}
	rows := []reader.Row{
		{time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC), int64(42), "hello"},
		{time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), nil, "world"},
	}

	if err := db.SaveSnapshot("payouts", cols, rows); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	count, err := db.SnapshotRowCount("payouts")
	if err != nil {
		t.Fatalf("SnapshotRowCount: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows, got %d", count)
	}

	var nulls int
	if err := db.Conn.QueryRow(`SELECT COUNT(1) FROM payouts WHERE "B" IS NULL;`).Scan(&nulls); err != nil {
		t.Fatalf("null count query: %v", err)
	}
	if nulls != 1 {
		t.Errorf("Expected 1 NULL integer cell, got %d", nulls)
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	db := newTestDB(t)
	cols := reader.Columns{{Label: "A", Type: reader.TypeText}}

	if err := db.SaveSnapshot("snap", cols, []reader.Row{{"one"}, {"two"}}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := db.SaveSnapshot("snap", cols, []reader.Row{{"three"}}); err != nil {
		t.Fatalf("SaveSnapshot (replace): %v", err)
	}

	count, err := db.SnapshotRowCount("snap")
	if err != nil {
		t.Fatalf("SnapshotRowCount: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected snapshot replaced with 1 row, got %d", count)
	}
}

func TestSaveSnapshot_InvalidName(t *testing.T) {
	db := newTestDB(t)
	err := db.SaveSnapshot("bad name; DROP TABLE x", reader.Columns{{Label: "A", Type: reader.TypeText}}, nil)
	if err == nil {
		t.Error("Expected error for invalid snapshot name")
	}
}
