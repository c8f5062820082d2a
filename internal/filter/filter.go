// Package filter narrows a candidate list to a search request
// client-side, because the upstream API cannot filter by station. The
// result is a tagged Outcome so callers always know whether they are
// holding real listings or the demo fallback.
package filter

import (
	"fmt"

	"github.com/yourorg/sumika-api/internal/canon"
	"github.com/yourorg/sumika-api/internal/demo"
	"github.com/yourorg/sumika-api/internal/stations"
	"github.com/yourorg/sumika-api/reinfolib"
)

// minResults is the quality floor: fewer survivors than this and the
// filtered list is discarded for the demo generator's output.
const minResults = 3

type Kind string

const (
	// KindFiltered means Properties are live records that matched.
	KindFiltered Kind = "filtered"
	// KindFallback means Properties were synthesized because too few
	// live records matched.
	KindFallback Kind = "fallback"
)

// Outcome is the filter result. Fallback outcomes carry a Reason for
// logs and API responses.
type Outcome struct {
	Kind       Kind                 `json:"kind"`
	Properties []reinfolib.Property `json:"properties"`
	Reason     string               `json:"reason,omitempty"`
}

// Apply runs the layered matching policy over candidates. Station
// criteria (several, OR-ed) come first, then hard numeric bounds on
// price and walk minutes. Requests with multiple stations match on any
// of them. When fewer than minResults survive and the request names a
// station, the demo output for the primary station is returned instead.
func Apply(candidates []reinfolib.Property, req reinfolib.SearchRequest) Outcome {
	matched := candidates
	if len(req.Stations) > 0 {
		matched = matched[:0:0]
		for _, p := range candidates {
			if matchesAnyStation(p, req.Stations) {
				matched = append(matched, p)
			}
		}
		if len(matched) < minResults {
			return fallback(req, fmt.Sprintf("only %d live matches before price filtering", len(matched)))
		}
	}

	matched = applyBounds(matched, req)

	if len(req.Stations) > 0 && len(matched) < minResults {
		return fallback(req, fmt.Sprintf("only %d live matches after price filtering", len(matched)))
	}
	return Outcome{Kind: KindFiltered, Properties: matched}
}

func fallback(req reinfolib.SearchRequest, reason string) Outcome {
	station := req.PrimaryStation()
	return Outcome{
		Kind:       KindFallback,
		Properties: demo.Properties(station),
		Reason:     reason,
	}
}

// matchesAnyStation is the OR of four criteria per station: direct
// station-field match (substring either direction, with or without a
// trailing 駅), address substring, the nearby-station alias table, and
// the city/ward alias table. All comparisons are width-folded and
// case-insensitive.
func matchesAnyStation(p reinfolib.Property, names []string) bool {
	propStation := canon.Normalize(p.Station)
	propAddress := canon.Normalize(p.Address)

	for _, name := range names {
		want := canon.Normalize(canon.TrimStationSuffix(name))
		if want == "" {
			continue
		}

		if stationFieldMatch(propStation, want) {
			return true
		}
		if canon.ContainsFold(propAddress, want) {
			return true
		}
		for _, alias := range stations.Nearby(name) {
			a := canon.Normalize(alias)
			if canon.ContainsFold(propStation, a) || canon.ContainsFold(propAddress, a) {
				return true
			}
		}
		for _, city := range stations.Cities(name) {
			if canon.ContainsFold(propAddress, city) {
				return true
			}
		}
	}
	return false
}

func stationFieldMatch(propStation, want string) bool {
	if propStation == "" {
		return false
	}
	return canon.ContainsFold(propStation, want) ||
		canon.ContainsFold(want, canon.TrimStationSuffix(propStation)) ||
		propStation == want ||
		propStation == want+"駅"
}

// applyBounds enforces price min/max and the walk-minutes ceiling.
// Missing values count as 0: a zero-priced record fails any positive
// minimum but slips under every maximum.
func applyBounds(in []reinfolib.Property, req reinfolib.SearchRequest) []reinfolib.Property {
	out := in[:0:0]
	for _, p := range in {
		if req.MinPrice > 0 && p.Price < req.MinPrice {
			continue
		}
		if req.MaxPrice > 0 && p.Price > req.MaxPrice {
			continue
		}
		if req.WalkMinutes > 0 && p.WalkMinutes > req.WalkMinutes {
			continue
		}
		if len(req.Layouts) > 0 && !layoutMatch(p.Layout, req.Layouts) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func layoutMatch(layout string, wanted []string) bool {
	for _, w := range wanted {
		if canon.ContainsFold(layout, w) {
			return true
		}
	}
	return false
}
