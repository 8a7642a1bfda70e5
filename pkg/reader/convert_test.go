package reader

import (
	"errors"
	"testing"
	"time"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		typ  Type
		want any
	}{
		{"text", "hello", TypeText, "hello"},
		{"text preserves spaces", " spaced ", TypeText, " spaced "},
		{"integer", "42", TypeInteger, int64(42)},
		{"negative integer", "-7", TypeInteger, int64(-7)},
		{"real", "3.14", TypeReal, 3.14},
		{"real from integer literal", "10", TypeReal, 10.0},
		{"empty text", "", TypeText, nil},
		{"empty integer", "", TypeInteger, nil},
		{"empty real", "", TypeReal, nil},
		{"empty date", "", TypeDate, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Convert(c.raw, c.typ)
			if err != nil {
				t.Fatalf("Convert(%q, %s): %v", c.raw, c.typ, err)
			}
			if got != c.want {
				t.Errorf("Convert(%q, %s) = %v, want %v", c.raw, c.typ, got, c.want)
			}
		})
	}
}

func TestConvert_DateLayouts(t *testing.T) {
	want := time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2025-08-19", "2025.08.19", "19.08.2025"} {
		got, err := Convert(raw, TypeDate)
		if err != nil {
			t.Fatalf("Convert(%q, date): %v", raw, err)
		}
		if !got.(time.Time).Equal(want) {
			t.Errorf("Convert(%q, date) = %v, want %v", raw, got, want)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	cases := []struct {
		raw string
		typ Type
	}{
		{"oops", TypeInteger},
		{"3.14", TypeInteger},
		{"oops", TypeReal},
		{"19/08/2025", TypeDate},
		{"not a date", TypeDate},
	}
	for _, c := range cases {
		_, err := Convert(c.raw, c.typ)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("Convert(%q, %s): expected ConversionError, got %v", c.raw, c.typ, err)
		}
		if convErr.Value != c.raw || convErr.Type != c.typ {
			t.Errorf("ConversionError carries %q/%s, want %q/%s", convErr.Value, convErr.Type, c.raw, c.typ)
		}
	}
}

func TestConvert_UnsupportedType(t *testing.T) {
	if _, err := Convert("x", Type("boolean")); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"text", "integer", "real", "date"} {
		if _, err := ParseType(s); err != nil {
			t.Errorf("ParseType(%q): %v", s, err)
		}
	}
	if _, err := ParseType("uuid"); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}
