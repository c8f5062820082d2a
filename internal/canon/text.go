package canon

import (
	"net/url"
	"strings"

	"golang.org/x/text/width"
)

// Normalize folds a Japanese free-text field into a comparable form:
// full-width latin/kana variants collapse onto their canonical width,
// ASCII is lowercased and surrounding space trimmed. Listing feeds mix
// ＲＣ with RC and １ＬＤＫ with 1LDK freely, so every fuzzy match goes
// through this first.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}

// TrimStationSuffix drops a trailing 駅 so "渋谷駅" and "渋谷" compare equal.
func TrimStationSuffix(s string) string {
	return strings.TrimSuffix(s, "駅")
}

// StripAdminSuffix removes a trailing administrative unit (市/区/町/村)
// from a municipality name. "渋谷区" becomes "渋谷"; names without a
// suffix pass through unchanged.
func StripAdminSuffix(s string) string {
	for _, suffix := range []string{"市", "区", "町", "村"} {
		if strings.HasSuffix(s, suffix) && s != suffix {
			return strings.TrimSuffix(s, suffix)
		}
	}
	return s
}

// ContainsFold reports whether haystack contains needle after both are
// normalized. Empty needles never match.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// QueryKey builds a stable cache key from query parameters plus any
// extra qualifiers that shape the result (stations, price bounds).
// url.Values.Encode sorts keys, so equal searches always collide.
func QueryKey(params url.Values, extra ...string) string {
	parts := make([]string, 0, 1+len(extra))
	parts = append(parts, params.Encode())
	for _, e := range extra {
		if e != "" {
			parts = append(parts, Normalize(e))
		}
	}
	return strings.Join(parts, "|")
}
