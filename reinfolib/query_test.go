package reinfolib_test

import (
	"testing"

	"github.com/yourorg/sumika-api/reinfolib"
)

func TestBuildQuery_NeverSendsStation(t *testing.T) {
	q := reinfolib.BuildQuery(reinfolib.SearchRequest{Stations: []string{"渋谷", "新宿"}})
	if q.Has("station") || q.Has("stations") {
		t.Errorf("query contains a station parameter: %v", q)
	}
}

func TestBuildQuery_AreaResolution(t *testing.T) {
	cases := []struct {
		name string
		req  reinfolib.SearchRequest
		want string
	}{
		{"explicit area wins", reinfolib.SearchRequest{Area: "27", Stations: []string{"渋谷"}}, "27"},
		{"station table", reinfolib.SearchRequest{Stations: []string{"横浜"}}, "14"},
		{"saitama station", reinfolib.SearchRequest{Stations: []string{"鉄道博物館"}}, "11"},
		{"unknown station falls back to tokyo", reinfolib.SearchRequest{Stations: []string{"知らない駅"}}, "13"},
		{"pref code", reinfolib.SearchRequest{PrefCode: "26"}, "26"},
		{"empty request", reinfolib.SearchRequest{}, "13"},
	}
	for _, c := range cases {
		if got := reinfolib.BuildQuery(c.req).Get("area"); got != c.want {
			t.Errorf("%s: area = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestBuildQuery_YearAndQuarterAlwaysPresent(t *testing.T) {
	q := reinfolib.BuildQuery(reinfolib.SearchRequest{})
	if q.Get("year") != "2024" {
		t.Errorf("year = %q, want default 2024", q.Get("year"))
	}
	if q.Get("quarter") != "1" {
		t.Errorf("quarter = %q, want default 1", q.Get("quarter"))
	}

	q = reinfolib.BuildQuery(reinfolib.SearchRequest{Year: "2023", Quarter: "3"})
	if q.Get("year") != "2023" || q.Get("quarter") != "3" {
		t.Errorf("explicit year/quarter not honored: %v", q)
	}
}

func TestBuildQuery_OptionalParams(t *testing.T) {
	q := reinfolib.BuildQuery(reinfolib.SearchRequest{})
	if q.Has("city") || q.Has("walk_minutes") {
		t.Errorf("optional params present on empty request: %v", q)
	}

	q = reinfolib.BuildQuery(reinfolib.SearchRequest{CityCode: "13113", WalkMinutes: 10})
	if q.Get("city") != "13113" {
		t.Errorf("city = %q, want 13113", q.Get("city"))
	}
	if q.Get("walk_minutes") != "10" {
		t.Errorf("walk_minutes = %q, want 10", q.Get("walk_minutes"))
	}
}
