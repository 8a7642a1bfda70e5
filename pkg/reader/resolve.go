package reader

import (
	"gsheet-reader/pkg/excel"
)

// Unresolved marks a requested column that lies outside the fetched span.
// Its cells materialize as nil on every row rather than failing the read.
const Unresolved = -1

// ResolveOffsets computes, for each selected column, its position within a
// fetched row of the given range. Fetched rows only carry cells for the
// requested span, so offsets are relative to the span's start column, not
// absolute sheet positions. Columns outside the span resolve to Unresolved.
func ResolveOffsets(rng excel.Range, cols Columns) ([]int, error) {
	lo, err := excel.ColumnToIndex(rng.Start.Column)
	if err != nil {
		return nil, err
	}
	width := rng.Width()

	offsets := make([]int, len(cols))
	for i, col := range cols {
		abs, err := excel.ColumnToIndex(col.Label)
		if err != nil {
			return nil, err
		}
		rel := abs - lo
		if rel < 0 || rel >= width {
			offsets[i] = Unresolved
			continue
		}
		offsets[i] = rel
	}
	return offsets, nil
}
