package reinfolib_test

import (
	"encoding/json"
	"testing"

	"github.com/yourorg/sumika-api/reinfolib"
)

func TestExtractNumber_Strings(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"150000", 150000},
		{"¥150,000", 150000},
		{"150,000円", 150000},
		{"3.5万円", 3.5},
		{"12万円", 12},
		{"15分", 15},
		{"45.5㎡", 45.5},
		{"", 0},
		{"不明", 0},
		{"-", 0},
	}
	for _, c := range cases {
		if got := reinfolib.ExtractNumber(c.in); got != c.want {
			t.Errorf("ExtractNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractNumber_NonStrings(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", float64(42.5), 42.5},
		{"int", 7, 7},
		{"json.Number", json.Number("123"), 123},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"map", map[string]any{"x": 1}, 0},
		{"slice", []any{1, 2}, 0},
	}
	for _, c := range cases {
		if got := reinfolib.ExtractNumber(c.in); got != c.want {
			t.Errorf("%s: ExtractNumber(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestPriceUnit_Apply(t *testing.T) {
	if got := reinfolib.UnitYen.Apply(150000); got != 150000 {
		t.Errorf("UnitYen.Apply(150000) = %v, want 150000", got)
	}
	if got := reinfolib.UnitManYen.Apply(12); got != 120000 {
		t.Errorf("UnitManYen.Apply(12) = %v, want 120000", got)
	}
	if got := reinfolib.UnitManYen.Apply(0); got != 0 {
		t.Errorf("UnitManYen.Apply(0) = %v, want 0", got)
	}
}
