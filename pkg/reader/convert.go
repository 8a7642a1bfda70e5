package reader

import (
	"fmt"
	"strconv"
	"time"
)

// ConversionError reports a cell value that could not be parsed into the
// requested type.
type ConversionError struct {
	Value string
	Type  Type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"02.01.2006",
}

// Convert parses a single raw cell into the value for the given column
// type. An empty cell converts to nil whatever the type, before any
// type-specific parsing.
func Convert(raw string, t Type) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch t {
	case TypeText:
		return raw, nil
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: t, Err: err}
		}
		return n, nil
	case TypeReal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: t, Err: err}
		}
		return f, nil
	case TypeDate:
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, raw); err == nil {
				return d, nil
			}
		}
		return nil, &ConversionError{Value: raw, Type: t, Err: fmt.Errorf("no date layout matched")}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
}
