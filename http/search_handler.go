package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/sumika-api/internal/events"
	"github.com/yourorg/sumika-api/internal/filter"
	"github.com/yourorg/sumika-api/reinfolib"
)

// Searcher is the upstream fetch half of the pipeline; the reinfolib
// client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req reinfolib.SearchRequest) ([]reinfolib.Property, error)
}

type SearchDeps struct {
	Search Searcher
	Pub    events.Publisher
	Log    *slog.Logger
}

func RegisterSearch(r chi.Router, d SearchDeps) {
	// POST: JSON body
	r.Post("/search", func(w http.ResponseWriter, req *http.Request) {
		var body reinfolib.SearchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		handleSearchRequest(w, req, d, body)
	})

	// GET: query params (compatibility)
	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		handleSearchRequest(w, req, d, ParseSearchQuery(req))
	})
}

// ParseSearchQuery reads a SearchRequest from URL query parameters.
// Stations and layouts are comma-separated lists.
func ParseSearchQuery(req *http.Request) reinfolib.SearchRequest {
	q := req.URL.Query()
	var body reinfolib.SearchRequest
	body.Stations = splitList(q.Get("stations"))
	body.Area = q.Get("area")
	body.PrefCode = q.Get("pref_code")
	body.CityCode = q.Get("city_code")
	body.Year = q.Get("year")
	body.Quarter = q.Get("quarter")
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			body.MinPrice = f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			body.MaxPrice = f
		}
	}
	if v := q.Get("walk_minutes"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			body.WalkMinutes = i
		}
	}
	body.Layouts = splitList(q.Get("layouts"))
	return body
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// handleSearchRequest runs fetch → normalize → filter. Pipeline
// failures never escape as HTTP errors: the client gets an empty list
// plus a user-facing message, and the detail goes to the log.
func handleSearchRequest(w http.ResponseWriter, req *http.Request, d SearchDeps, body reinfolib.SearchRequest) {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	props, err := d.Search.Search(req.Context(), body)
	if err != nil {
		log.Error("upstream search failed", "err", err)
		render.JSON(w, req, map[string]any{
			"ok":         false,
			"error":      "物件情報の取得に失敗しました",
			"count":      0,
			"properties": []reinfolib.Property{},
		})
		return
	}

	outcome := filter.Apply(props, body)
	if d.Pub != nil {
		d.Pub.PublishSearchCompleted(req.Context(), events.SearchCompleted{
			Station:  body.PrimaryStation(),
			Count:    len(outcome.Properties),
			Fallback: outcome.Kind == filter.KindFallback,
		})
	}

	resp := map[string]any{
		"ok":         true,
		"count":      len(outcome.Properties),
		"source":     outcome.Kind,
		"properties": outcome.Properties,
	}
	if outcome.Reason != "" {
		resp["reason"] = outcome.Reason
	}
	render.JSON(w, req, resp)
}
