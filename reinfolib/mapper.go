package reinfolib

import (
	"fmt"
	"strings"

	"github.com/yourorg/sumika-api/internal/canon"
)

// placeholderImage keeps cover_url non-empty when the upstream has no photo.
const placeholderImage = "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"

// maxBatch caps one normalization pass; reinfolib can return very
// large quarters for dense prefectures.
const maxBatch = 2000

// ToProperty normalizes one raw upstream record of arbitrary shape
// into the canonical Property. Field resolution is first-non-empty,
// top to bottom, with hard defaults at the bottom. A panic while
// digging through the record is recovered and yields a fully
// defaulted placeholder so one malformed record cannot abort a batch.
func ToProperty(raw any, index int) (p Property) {
	defer func() {
		if r := recover(); r != nil {
			p = placeholderProperty(index)
		}
	}()

	rec := record{m: asMap(raw)}

	station, walk := rec.stationAndWalk()
	address := rec.address()
	if station == stationUnknown {
		if m := rec.str("Municipality"); m != "" {
			station = canon.StripAdminSuffix(m)
		}
	}

	price := ExtractNumber(rec.first("price", "TradePrice"))
	initial := ExtractNumber(rec.first("initial_cost"))
	if initial == 0 && price > 0 {
		initial = price * 3
	}

	return Property{
		ID:           firstNonEmpty(rec.str("id"), rec.str("No"), fmt.Sprintf("%d", index)),
		Title:        firstNonEmpty(rec.str("title"), rec.generatedTitle(index)),
		Price:        price,
		CoverURL:     firstNonEmpty(rec.str("cover_url"), rec.str("imageUrl"), placeholderImage),
		Layout:       firstNonEmpty(rec.str("layout"), rec.str("FloorPlan"), "ワンルーム"),
		Station:      station,
		WalkMinutes:  walk,
		Deposit:      extractDefault(rec.first("deposit"), 1),
		KeyMoney:     extractDefault(rec.first("key_money"), 1),
		InitialCost:  initial,
		Address:      address,
		OwnerType:    ParseOwnerType(rec.str("owner_type")),
		OwnerName:    firstNonEmpty(rec.str("owner_name"), rec.str("Structure"), "不動産仲介"),
		BuildingYear: int(extractDefault(rec.first("building_year", "BuildingYear"), 2000)),
		Area:         extractDefault(rec.first("area", "Area"), 50),
		LandType:     firstNonEmpty(rec.str("landType"), rec.str("Type"), "マンション"),
		Structure:    firstNonEmpty(rec.str("structure"), rec.str("Structure"), "RC"),
		Purpose:      firstNonEmpty(rec.str("purpose"), rec.str("Purpose"), "住居"),
		CityPlanning: firstNonEmpty(rec.str("cityPlanning"), rec.str("CityPlanning"), "設定なし"),
	}
}

// MapPayload converts a whole unwrapped batch, dropping records that
// fail the quality gate (empty id, non-positive price or area).
func MapPayload(items []any) []Property {
	out := make([]Property, 0, len(items))
	for i, item := range items {
		prop := ToProperty(item, i)
		if prop.ID == "" || prop.Price <= 0 || prop.Area <= 0 {
			continue
		}
		out = append(out, prop)
		if len(out) >= maxBatch {
			break
		}
	}
	return out
}

const stationUnknown = "不明"

type record struct {
	m map[string]any
}

func (r record) str(key string) string {
	if r.m == nil {
		return ""
	}
	if s, ok := r.m[key].(string); ok {
		return s
	}
	return ""
}

func (r record) first(keys ...string) any {
	for _, k := range keys {
		if v, ok := r.m[k]; ok && v != nil {
			if s, isStr := v.(string); isStr && s == "" {
				continue
			}
			return v
		}
	}
	return nil
}

// stationAndWalk derives the nearest station label and walk minutes.
// Records without a station field fall back to the municipality with
// its administrative suffix stripped, so 渋谷区 still matches a 渋谷
// search later on.
func (r record) stationAndWalk() (string, int) {
	station := stationUnknown
	if s := r.str("Station"); s != "" {
		station = s
	} else if pref := r.str("Prefecture"); pref != "" {
		if m := r.str("Municipality"); m != "" {
			station = canon.StripAdminSuffix(m)
		} else {
			switch {
			case strings.Contains(pref, "東京"):
				station = "東京"
			case strings.Contains(pref, "神奈川"):
				station = "横浜"
			case strings.Contains(pref, "埼玉"):
				station = "大宮"
			}
		}
	}

	walk := 5
	if t := r.str("TimeToStation"); t != "" {
		if n := ExtractNumber(t); n > 0 {
			walk = int(n)
		}
	} else if v, ok := r.m["TimeToStation"]; ok {
		if n := ExtractNumber(v); n > 0 {
			walk = int(n)
		}
	}
	return station, walk
}

func (r record) address() string {
	parts := make([]string, 0, 3)
	for _, k := range []string{"Prefecture", "Municipality", "DistrictName"} {
		if v := r.str(k); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func (r record) generatedTitle(index int) string {
	location := r.address()
	propType := firstNonEmpty(r.str("Type"), "物件")
	layout := r.str("FloorPlan")

	switch {
	case location != "" && layout != "":
		return fmt.Sprintf("%sの%s %s", location, layout, propType)
	case location != "":
		return fmt.Sprintf("%sの%s", location, propType)
	default:
		return fmt.Sprintf("物件 #%d", index+1)
	}
}

func placeholderProperty(index int) Property {
	return Property{
		ID:           fmt.Sprintf("%d", index),
		Title:        fmt.Sprintf("物件 #%d", index+1),
		Price:        150000,
		CoverURL:     placeholderImage,
		Layout:       "ワンルーム",
		Station:      stationUnknown,
		WalkMinutes:  5,
		Deposit:      1,
		KeyMoney:     1,
		InitialCost:  450000,
		Address:      stationUnknown,
		OwnerType:    OwnerAgency,
		OwnerName:    "不動産仲介",
		BuildingYear: 2020,
		Area:         50,
		LandType:     "マンション",
		Structure:    "RC",
		Purpose:      "住居",
		CityPlanning: "設定なし",
	}
}

func asMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

func extractDefault(v any, def float64) float64 {
	if v == nil {
		return def
	}
	if n := ExtractNumber(v); n != 0 {
		return n
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
