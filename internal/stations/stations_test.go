package stations_test

import (
	"testing"

	"github.com/yourorg/sumika-api/internal/stations"
)

func TestAreaCode(t *testing.T) {
	cases := []struct {
		station string
		want    string
		ok      bool
	}{
		{"渋谷", "13", true},
		{"横浜", "14", true},
		{"鉄道博物館", "11", true},
		{"存在しない駅", "", false},
	}
	for _, c := range cases {
		got, ok := stations.AreaCode(c.station)
		if got != c.want || ok != c.ok {
			t.Errorf("AreaCode(%q) = (%q, %v), want (%q, %v)", c.station, got, ok, c.want, c.ok)
		}
	}
}

func TestNearbyAndCities(t *testing.T) {
	if len(stations.Nearby("渋谷")) == 0 {
		t.Error("渋谷 should have nearby aliases")
	}
	if stations.Nearby("存在しない駅") != nil {
		t.Error("unknown station should have no nearby aliases")
	}
	if len(stations.Cities("横浜")) == 0 {
		t.Error("横浜 should have city aliases")
	}
	if stations.Cities("存在しない駅") != nil {
		t.Error("unknown station should have no city aliases")
	}
}

func TestLookup(t *testing.T) {
	g := stations.Lookup("渋谷")
	if g.Ward != "渋谷区" || g.Prefecture != "東京都" {
		t.Errorf("Lookup(渋谷) = %+v", g)
	}
	if len(g.Neighborhoods) == 0 {
		t.Error("mapped station must have neighborhoods")
	}

	generic := stations.Lookup("存在しない駅")
	if generic.Ward == "" || generic.Prefecture == "" || len(generic.Neighborhoods) == 0 {
		t.Errorf("generic fallback must be fully populated, got %+v", generic)
	}
}
