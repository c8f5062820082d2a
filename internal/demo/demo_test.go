package demo_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/yourorg/sumika-api/internal/demo"
)

func TestProperties_Deterministic(t *testing.T) {
	a := demo.Properties("渋谷")
	b := demo.Properties("渋谷")
	if !reflect.DeepEqual(a, b) {
		t.Error("two generations for the same station must be identical")
	}
}

func TestProperties_CountAndIDs(t *testing.T) {
	props := demo.Properties("渋谷")
	if len(props) != 4 {
		t.Fatalf("got %d records, want 4", len(props))
	}
	for i, p := range props {
		want := fmt.Sprintf("渋谷-%d", i+1)
		if p.ID != want {
			t.Errorf("props[%d].ID = %q, want %q", i, p.ID, want)
		}
		if p.Station != "渋谷" {
			t.Errorf("props[%d].Station = %q, want 渋谷", i, p.Station)
		}
	}
}

func TestProperties_LinearSteps(t *testing.T) {
	props := demo.Properties("新宿")
	wantPrices := []float64{30000000, 50000000, 70000000, 90000000}
	wantAreas := []float64{30, 45, 60, 75}
	wantYears := []int{2010, 2012, 2014, 2016}
	wantWalks := []int{3, 5, 7, 9}

	for i, p := range props {
		if p.Price != wantPrices[i] {
			t.Errorf("props[%d].Price = %v, want %v", i, p.Price, wantPrices[i])
		}
		if p.Area != wantAreas[i] {
			t.Errorf("props[%d].Area = %v, want %v", i, p.Area, wantAreas[i])
		}
		if p.BuildingYear != wantYears[i] {
			t.Errorf("props[%d].BuildingYear = %d, want %d", i, p.BuildingYear, wantYears[i])
		}
		if p.WalkMinutes != wantWalks[i] {
			t.Errorf("props[%d].WalkMinutes = %d, want %d", i, p.WalkMinutes, wantWalks[i])
		}
		if p.InitialCost != p.Price*3 {
			t.Errorf("props[%d].InitialCost = %v, want price x3", i, p.InitialCost)
		}
	}
}

func TestProperties_KnownStationGeography(t *testing.T) {
	props := demo.Properties("横浜")
	for i, p := range props {
		if p.Address == "" || p.Title == "" {
			t.Errorf("props[%d] has empty address or title", i)
		}
	}
	if got := props[0].Address; got != "神奈川県 西区 みなとみらい" {
		t.Errorf("props[0].Address = %q", got)
	}
}

func TestProperties_UnknownStationUsesGenericGeo(t *testing.T) {
	props := demo.Properties("架空駅")
	if len(props) != 4 {
		t.Fatalf("got %d records, want 4", len(props))
	}
	for i, p := range props {
		if p.Price <= 0 || p.Area <= 0 || p.ID == "" {
			t.Errorf("props[%d] would fail the quality gate: %+v", i, p)
		}
		if p.Address == "" {
			t.Errorf("props[%d].Address is empty for unmapped station", i)
		}
	}
}
