package reader

import (
	"context"
	"fmt"
	"log/slog"

	"gsheet-reader/pkg/excel"
)

// ValueSource fetches the raw cell grid for a range of a remote
// spreadsheet. Row 0 of the result, when present, is a header row.
type ValueSource interface {
	Values(ctx context.Context, spreadsheetID, rangeExpr string) ([][]string, error)
}

// Reader reads ranges from a ValueSource and converts them into typed rows.
type Reader struct {
	source ValueSource
}

func New(source ValueSource) *Reader {
	return &Reader{source: source}
}

// ReadRows fetches the range and returns one typed Row per data row. The
// first fetched row is always treated as a header and dropped. Column order
// of the result follows cols; columns outside the fetched span yield nil in
// every row.
func (r *Reader) ReadRows(ctx context.Context, spreadsheetID, rangeExpr string, cols Columns) ([]Row, error) {
	for _, col := range cols {
		if _, err := ParseType(string(col.Type)); err != nil {
			return nil, err
		}
	}

	rng, err := excel.ParseRange(rangeExpr)
	if err != nil {
		return nil, fmt.Errorf("parse range %q: %w", rangeExpr, err)
	}

	offsets, err := ResolveOffsets(rng, cols)
	if err != nil {
		return nil, err
	}

	slog.Debug("Fetching range", "spreadsheet_id", spreadsheetID, "range", rangeExpr, "columns", len(cols))
	raw, err := r.source.Values(ctx, spreadsheetID, rangeExpr)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", spreadsheetID, rangeExpr, err)
	}

	rows, err := Materialize(raw, offsets, cols)
	if err != nil {
		return nil, err
	}
	slog.Info("Range read", "spreadsheet_id", spreadsheetID, "range", rangeExpr, "rows", len(rows))
	return rows, nil
}

// ReadTable is ReadRows with the result wrapped into a labeled Table.
func (r *Reader) ReadTable(ctx context.Context, spreadsheetID, rangeExpr string, cols Columns) (*Table, error) {
	rows, err := r.ReadRows(ctx, spreadsheetID, rangeExpr, cols)
	if err != nil {
		return nil, err
	}
	return NewTable(rows, cols), nil
}

// Materialize converts raw fetched rows into typed rows. The header row is
// dropped unconditionally. Cells beyond a short row's end (the source omits
// trailing empties) and unresolved columns materialize as nil.
func Materialize(raw [][]string, offsets []int, cols Columns) ([]Row, error) {
	if len(raw) == 0 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(raw)-1)
	for rowIdx, rawRow := range raw[1:] {
		row := make(Row, len(cols))
		for i, col := range cols {
			off := offsets[i]
			if off == Unresolved || off >= len(rawRow) {
				row[i] = nil
				continue
			}
			v, err := Convert(rawRow[off], col.Type)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", rowIdx+2, col.Label, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
