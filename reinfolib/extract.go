package reinfolib

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExtractNumber pulls a numeric value out of whatever shape the
// upstream used for the field. Strings are scrubbed of currency
// symbols, commas and units before parsing. Total function: anything
// unparsable is 0, it never panics.
func ExtractNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		var b strings.Builder
		for _, r := range x {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// PriceUnit names the unit an upstream reports prices in. The two
// integrations disagree (reinfolib sends raw yen, LIFULL sends
// man-yen for monthly rent), so the conversion is an explicit
// per-source choice rather than a guess.
type PriceUnit int

const (
	// UnitYen passes values through unchanged.
	UnitYen PriceUnit = iota
	// UnitManYen multiplies by 10,000 (万円 text fields).
	UnitManYen
)

// Apply converts v from the unit into yen.
func (u PriceUnit) Apply(v float64) float64 {
	if u == UnitManYen {
		return v * 10000
	}
	return v
}
