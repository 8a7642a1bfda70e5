package excel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumnLabel reports a column label that is empty, contains
// non-letter characters, or a negative index passed to IndexToColumn.
var ErrInvalidColumnLabel = errors.New("invalid column label")

// ColumnToIndex converts a spreadsheet column label to a zero-based index.
// Labels are bijective base-26: A=0, Z=25, AA=26, AB=27. Input is
// case-insensitive.
func ColumnToIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrInvalidColumnLabel)
	}
	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnLabel, label)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}

// IndexToColumn converts a zero-based column index back to its label.
// Inverse of ColumnToIndex: for all n >= 0,
// ColumnToIndex(IndexToColumn(n)) == n.
func IndexToColumn(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: negative index %d", ErrInvalidColumnLabel, index)
	}
	var b []byte
	n := index + 1
	for n > 0 {
		n--
		b = append(b, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), nil
}
