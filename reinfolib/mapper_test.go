package reinfolib_test

import (
	"testing"

	"github.com/yourorg/sumika-api/reinfolib"
)

func TestToProperty_FullRecord(t *testing.T) {
	raw := map[string]any{
		"No":            "XIT-42",
		"TradePrice":    "45,000,000",
		"FloorPlan":     "２ＬＤＫ",
		"Prefecture":    "東京都",
		"Municipality":  "渋谷区",
		"DistrictName":  "桜丘",
		"TimeToStation": "7",
		"Area":          "55",
		"BuildingYear":  "2015",
		"Structure":     "ＲＣ",
		"Type":          "中古マンション等",
	}
	p := reinfolib.ToProperty(raw, 0)

	if p.ID != "XIT-42" {
		t.Errorf("ID = %q, want XIT-42", p.ID)
	}
	if p.Price != 45000000 {
		t.Errorf("Price = %v, want 45000000", p.Price)
	}
	if p.Station != "渋谷" {
		t.Errorf("Station = %q, want 渋谷 (municipality with 区 stripped)", p.Station)
	}
	if p.WalkMinutes != 7 {
		t.Errorf("WalkMinutes = %d, want 7", p.WalkMinutes)
	}
	if p.Address != "東京都 渋谷区 桜丘" {
		t.Errorf("Address = %q", p.Address)
	}
	if p.Layout != "２ＬＤＫ" {
		t.Errorf("Layout = %q, want ２ＬＤＫ", p.Layout)
	}
	if p.Area != 55 {
		t.Errorf("Area = %v, want 55", p.Area)
	}
	if p.BuildingYear != 2015 {
		t.Errorf("BuildingYear = %d, want 2015", p.BuildingYear)
	}
	if p.InitialCost != 45000000*3 {
		t.Errorf("InitialCost = %v, want price x3", p.InitialCost)
	}
	if p.Title == "" {
		t.Error("Title should be generated, got empty")
	}
}

func TestToProperty_Defaults(t *testing.T) {
	p := reinfolib.ToProperty(map[string]any{}, 3)

	if p.ID != "3" {
		t.Errorf("ID = %q, want index fallback \"3\"", p.ID)
	}
	if p.Title != "物件 #4" {
		t.Errorf("Title = %q, want 物件 #4", p.Title)
	}
	if p.Price != 0 {
		t.Errorf("Price = %v, want 0 (no default price)", p.Price)
	}
	if p.CoverURL == "" {
		t.Error("CoverURL must never be empty")
	}
	if p.Layout != "ワンルーム" {
		t.Errorf("Layout = %q, want ワンルーム", p.Layout)
	}
	if p.Station != "不明" {
		t.Errorf("Station = %q, want 不明", p.Station)
	}
	if p.WalkMinutes != 5 {
		t.Errorf("WalkMinutes = %d, want 5", p.WalkMinutes)
	}
	if p.Deposit != 1 || p.KeyMoney != 1 {
		t.Errorf("Deposit/KeyMoney = %v/%v, want 1/1", p.Deposit, p.KeyMoney)
	}
	if p.BuildingYear != 2000 {
		t.Errorf("BuildingYear = %d, want 2000", p.BuildingYear)
	}
	if p.Area != 50 {
		t.Errorf("Area = %v, want 50", p.Area)
	}
	if p.OwnerType != reinfolib.OwnerAgency {
		t.Errorf("OwnerType = %q, want agency", p.OwnerType)
	}
}

func TestToProperty_StationFromPrefecture(t *testing.T) {
	cases := []struct {
		pref string
		want string
	}{
		{"東京都", "東京"},
		{"神奈川県", "横浜"},
		{"埼玉県", "大宮"},
		{"北海道", "不明"},
	}
	for _, c := range cases {
		p := reinfolib.ToProperty(map[string]any{"Prefecture": c.pref}, 0)
		if p.Station != c.want {
			t.Errorf("Prefecture %q: Station = %q, want %q", c.pref, p.Station, c.want)
		}
	}
}

func TestToProperty_NeverPanics(t *testing.T) {
	inputs := []any{
		nil,
		"just a string",
		42.0,
		[]any{1, 2, 3},
		map[string]any{"TradePrice": []any{"nested"}},
		map[string]any{"Station": 99, "TimeToStation": map[string]any{}},
	}
	for i, raw := range inputs {
		p := reinfolib.ToProperty(raw, i)
		if p.ID == "" {
			t.Errorf("input %d: ID must never be empty", i)
		}
		if p.CoverURL == "" {
			t.Errorf("input %d: CoverURL must never be empty", i)
		}
	}
}

func TestMapPayload_QualityGate(t *testing.T) {
	items := []any{
		map[string]any{"TradePrice": "30000000", "Area": "40"}, // keep
		map[string]any{"TradePrice": "0"},                      // zero price, drop
		map[string]any{"Area": "60"},                           // no price, drop
		map[string]any{"TradePrice": "50000000"},               // keep, area defaults
	}
	out := reinfolib.MapPayload(items)
	if len(out) != 2 {
		t.Fatalf("MapPayload kept %d records, want 2", len(out))
	}
	for _, p := range out {
		if p.Price <= 0 || p.Area <= 0 || p.ID == "" {
			t.Errorf("record %q escaped the quality gate: price=%v area=%v", p.ID, p.Price, p.Area)
		}
	}
}
