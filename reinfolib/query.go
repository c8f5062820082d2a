package reinfolib

import (
	"net/url"
	"strconv"

	"github.com/yourorg/sumika-api/internal/stations"
)

const (
	defaultYear    = "2024"
	defaultQuarter = "1"
)

// BuildQuery turns a SearchRequest into the parameter set XIT001
// accepts. Area resolution order: explicit area code, then the
// station table, then an explicit prefecture code, then Tokyo. Year
// and quarter are always present because the upstream requires them.
//
// The upstream has no station parameter; station narrowing happens
// entirely client-side in the filter engine, so the returned values
// never contain a "station" key.
func BuildQuery(req SearchRequest) url.Values {
	q := url.Values{}

	switch {
	case req.Area != "":
		q.Set("area", req.Area)
	case req.PrimaryStation() != "":
		code, ok := stations.AreaCode(req.PrimaryStation())
		if !ok {
			code = stations.DefaultAreaCode
		}
		q.Set("area", code)
	case req.PrefCode != "":
		q.Set("area", req.PrefCode)
	default:
		q.Set("area", stations.DefaultAreaCode)
	}

	if req.CityCode != "" {
		q.Set("city", req.CityCode)
	}

	year := req.Year
	if year == "" {
		year = defaultYear
	}
	q.Set("year", year)

	quarter := req.Quarter
	if quarter == "" {
		quarter = defaultQuarter
	}
	q.Set("quarter", quarter)

	if req.WalkMinutes > 0 {
		q.Set("walk_minutes", strconv.Itoa(req.WalkMinutes))
	}

	return q
}
