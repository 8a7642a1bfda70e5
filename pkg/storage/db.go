package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"gsheet-reader/pkg/reader"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DB persists materialized range reads as DuckDB tables, one table per
// named snapshot.
type DB struct {
	Conn *sql.DB
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func InitDB(filepath string) (*DB, error) {
	slog.Info("Initializing snapshot database", "path", filepath)
	db, err := sql.Open("duckdb", filepath)
	if err != nil {
		slog.Error("Failed to open database", "path", filepath, "error", err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		slog.Error("Failed to ping database", "path", filepath, "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Snapshot database initialized")
	return &DB{Conn: db}, nil
}

// sqlType maps a column conversion type to its DuckDB column type.
func sqlType(t reader.Type) string {
	switch t {
	case reader.TypeInteger:
		return "BIGINT"
	case reader.TypeReal:
		return "DOUBLE"
	case reader.TypeDate:
		return "DATE"
	default:
		return "VARCHAR"
	}
}

// SaveSnapshot stores the rows of one range read under the given table
// name, replacing any previous snapshot of that name. Column labels become
// column names; nils insert as SQL NULL.
func (d *DB) SaveSnapshot(name string, cols reader.Columns, rows []reader.Row) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("invalid snapshot name: %q", name)
	}
	slog.Debug("Saving snapshot", "table", name, "rows", len(rows))

	defs := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf("%q %s", col.Label, sqlType(col.Type))
		placeholders[i] = "?"
	}

	createStmt := fmt.Sprintf(`CREATE OR REPLACE TABLE %s (%s);`, name, strings.Join(defs, ", "))
	slog.Debug("Executing create table statement", "query", createStmt)
	if _, err := d.Conn.Exec(createStmt); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	insertStmt := fmt.Sprintf(`INSERT INTO %s VALUES (%s);`, name, strings.Join(placeholders, ", "))
	stmt, err := d.Conn.Prepare(insertStmt)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec([]any(row)...); err != nil {
			return fmt.Errorf("failed to insert snapshot row: %w", err)
		}
	}

	slog.Info("Snapshot saved", "table", name, "rows", len(rows))
	return nil
}

// SnapshotRowCount returns the number of rows in a stored snapshot.
func (d *DB) SnapshotRowCount(name string) (int, error) {
	if !identRe.MatchString(name) {
		return 0, fmt.Errorf("invalid snapshot name: %q", name)
	}
	var count int
	query := fmt.Sprintf(`SELECT COUNT(1) FROM %s;`, name)
	if err := d.Conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count snapshot rows: %w", err)
	}
	return count, nil
}

func (d *DB) Close() error {
	return d.Conn.Close()
}
