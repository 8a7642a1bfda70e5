package reader

import (
	"errors"
	"fmt"
)

// Type is the closed set of cell conversions a column can request.
type Type string

const (
	TypeText    Type = "text"
	TypeInteger Type = "integer"
	TypeReal    Type = "real"
	TypeDate    Type = "date"
)

// ErrUnsupportedType reports a type tag outside the supported set.
var ErrUnsupportedType = errors.New("unsupported column type")

// ParseType validates a type tag string against the supported set.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeText, TypeInteger, TypeReal, TypeDate:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}

// Column binds a spreadsheet column label to the conversion applied to its
// cells.
type Column struct {
	Label string `json:"label"`
	Type  Type   `json:"type"`
}

// Columns is an ordered column selection. Order is caller-significant: it is
// the field order of every produced Row.
type Columns []Column

// Labels returns the column labels in selection order.
func (cs Columns) Labels() []string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.Label
	}
	return labels
}

// Row is one materialized data row. Entries follow the column selection
// order and hold string, int64, float64, time.Time, or nil for an empty or
// absent cell.
type Row []any
