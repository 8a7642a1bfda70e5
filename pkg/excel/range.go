package excel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidRange reports a range whose start column lies after its end
// column.
var ErrInvalidRange = errors.New("invalid range")

type Cell struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
}

// NewCell parses an A1-style cell reference. The row part is optional;
// row-free references ("C") parse with Row 0.
func NewCell(cell string) (Cell, error) {
	for i, r := range cell {
		if unicode.IsDigit(r) {
			row, err := strconv.Atoi(cell[i:])
			if err != nil {
				return Cell{}, fmt.Errorf("invalid cell format: %s", cell)
			}
			if _, err := ColumnToIndex(cell[:i]); err != nil {
				return Cell{}, err
			}
			return Cell{Column: strings.ToUpper(cell[:i]), Row: row}, nil
		}
	}
	if _, err := ColumnToIndex(cell); err != nil {
		return Cell{}, err
	}
	return Cell{Column: strings.ToUpper(cell), Row: 0}, nil
}

// Range is the column span of an A1-style range expression. Start and End
// are equal for a single-column range.
type Range struct {
	Start Cell `json:"start"`
	End   Cell `json:"end"`
}

// ParseRange extracts the column span from a range expression. A sheet-name
// prefix ("Sheet1!A2:C10") is discarded, as are row numbers; only the column
// labels matter to the span. A lone column ("C") spans itself. Fails with
// ErrInvalidRange when the start column lies after the end column.
func ParseRange(rangeExpr string) (Range, error) {
	if i := strings.LastIndex(rangeExpr, "!"); i >= 0 {
		rangeExpr = rangeExpr[i+1:]
	}
	start, end, found := strings.Cut(rangeExpr, ":")
	if !found {
		end = start
	}
	startCell, err := NewCell(start)
	if err != nil {
		return Range{}, err
	}
	endCell, err := NewCell(end)
	if err != nil {
		return Range{}, err
	}
	lo, err := ColumnToIndex(startCell.Column)
	if err != nil {
		return Range{}, err
	}
	hi, err := ColumnToIndex(endCell.Column)
	if err != nil {
		return Range{}, err
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: start column %s after end column %s", ErrInvalidRange, startCell.Column, endCell.Column)
	}
	return Range{Start: startCell, End: endCell}, nil
}

// Width returns the number of columns the range spans, inclusive of both
// ends.
func (r Range) Width() int {
	lo, _ := ColumnToIndex(r.Start.Column)
	hi, _ := ColumnToIndex(r.End.Column)
	return hi - lo + 1
}

// Columns enumerates the labels of every column in the span, start to end.
func (r Range) Columns() []string {
	lo, _ := ColumnToIndex(r.Start.Column)
	cols := make([]string, 0, r.Width())
	for i := 0; i < r.Width(); i++ {
		label, _ := IndexToColumn(lo + i)
		cols = append(cols, label)
	}
	return cols
}

func (c Cell) String() string {
	if c.Row == 0 {
		return c.Column
	}
	return fmt.Sprintf("%s%d", c.Column, c.Row)
}

func (r Range) String() string {
	return fmt.Sprintf("%s:%s", r.Start.String(), r.End.String())
}
