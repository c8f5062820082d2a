package canon_test

import (
	"net/url"
	"testing"

	"github.com/yourorg/sumika-api/internal/canon"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ＲＣ", "rc"},
		{" １ＬＤＫ ", "1ldk"},
		{"Shibuya", "shibuya"},
		{"渋谷", "渋谷"},
		{"", ""},
	}
	for _, c := range cases {
		if got := canon.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTrimStationSuffix(t *testing.T) {
	if got := canon.TrimStationSuffix("渋谷駅"); got != "渋谷" {
		t.Errorf("TrimStationSuffix(渋谷駅) = %q, want 渋谷", got)
	}
	if got := canon.TrimStationSuffix("渋谷"); got != "渋谷" {
		t.Errorf("TrimStationSuffix(渋谷) = %q, want 渋谷", got)
	}
}

func TestStripAdminSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"渋谷区", "渋谷"},
		{"横浜市", "横浜"},
		{"大磯町", "大磯"},
		{"大宮", "大宮"},
		{"区", "区"}, // bare suffix passes through
	}
	for _, c := range cases {
		if got := canon.StripAdminSuffix(c.in); got != c.want {
			t.Errorf("StripAdminSuffix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !canon.ContainsFold("東京都渋谷区桜丘町", "渋谷") {
		t.Error("address should contain the ward")
	}
	if !canon.ContainsFold("１ＬＤＫ＋Ｓ", "1ldk") {
		t.Error("full-width layout should match half-width query")
	}
	if canon.ContainsFold("東京都渋谷区", "") {
		t.Error("empty needle must never match")
	}
	if canon.ContainsFold("新宿", "渋谷") {
		t.Error("unrelated strings must not match")
	}
}

func TestQueryKey_StableAndDistinct(t *testing.T) {
	a := url.Values{}
	a.Set("area", "13")
	a.Set("year", "2024")

	b := url.Values{}
	b.Set("year", "2024")
	b.Set("area", "13")

	if canon.QueryKey(a, "渋谷") != canon.QueryKey(b, "渋谷") {
		t.Error("same parameters must produce the same key regardless of construction order")
	}
	if canon.QueryKey(a, "渋谷") == canon.QueryKey(a, "新宿") {
		t.Error("different extras must produce different keys")
	}
	if canon.QueryKey(a) != canon.QueryKey(a, "", "") {
		t.Error("empty extras must not change the key")
	}
}
