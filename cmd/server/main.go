package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"gsheet-reader/config"
	"gsheet-reader/pkg/excel"
	"gsheet-reader/pkg/gsheets"
	"gsheet-reader/pkg/reader"
	"gsheet-reader/pkg/storage"
)

type Server struct {
	cfg    *config.Config
	reader *reader.Reader
	db     *storage.DB // nil if snapshots are not configured
}

type ReadRequest struct {
	SheetID string `json:"sheet_id"`
	Range   string `json:"range"`
	Columns []struct {
		Label string `json:"label"`
		Type  string `json:"type"`
	} `json:"columns"`
	Format  string `json:"format,omitempty"`   // "rows" (default) or "table"
	StoreAs string `json:"store_as,omitempty"` // snapshot table name, optional
}

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	var lvl slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// 3. Init Snapshot DB (optional)
	var db *storage.DB
	if cfg.DBPath != "" {
		db, err = storage.InitDB(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to init db", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	} else {
		slog.Info("Snapshots disabled (DB_PATH not set)")
	}

	// 4. Init Sheets Client
	ctx := context.Background()
	client, err := gsheets.NewClient(ctx, gsheets.Credentials{
		Path: cfg.CredentialsPath,
		JSON: []byte(cfg.CredentialsJSON),
	})
	if err != nil {
		slog.Error("Failed to init Sheets client", "error", err)
		os.Exit(1)
	}

	srv := &Server{
		cfg:    cfg,
		reader: reader.New(client),
		db:     db,
	}

	// 5. Start Server
	http.HandleFunc("POST /read", srv.handleRead)
	http.HandleFunc("GET /health", srv.handleHealth)
	slog.Info("Starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	var req ReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode read request", "error", err)
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SheetID == "" || req.Range == "" || len(req.Columns) == 0 {
		http.Error(w, "sheet_id, range and columns are required", http.StatusBadRequest)
		return
	}

	cols := make(reader.Columns, 0, len(req.Columns))
	for _, c := range req.Columns {
		t, err := reader.ParseType(c.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cols = append(cols, reader.Column{Label: c.Label, Type: t})
	}

	slog.Info("Received read request", "sheet_id", req.SheetID, "range", req.Range, "columns", len(cols))

	rows, err := s.reader.ReadRows(r.Context(), req.SheetID, req.Range, cols)
	if err != nil {
		status := readErrorStatus(err)
		slog.Error("Read failed", "sheet_id", req.SheetID, "range", req.Range, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	if req.StoreAs != "" {
		if s.db == nil {
			http.Error(w, "snapshots are not configured", http.StatusBadRequest)
			return
		}
		if err := s.db.SaveSnapshot(req.StoreAs, cols, rows); err != nil {
			slog.Error("Snapshot failed", "table", req.StoreAs, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if req.Format == "table" {
		json.NewEncoder(w).Encode(reader.NewTable(rows, cols))
		return
	}
	json.NewEncoder(w).Encode(rows)
}

// readErrorStatus maps read failures onto HTTP statuses: caller mistakes are
// 4xx, upstream failures are 502.
func readErrorStatus(err error) int {
	var convErr *reader.ConversionError
	switch {
	case errors.Is(err, excel.ErrInvalidColumnLabel),
		errors.Is(err, excel.ErrInvalidRange),
		errors.Is(err, reader.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.As(err, &convErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gsheets.ErrAuthorization):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
