package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/sumika-api/http"
	"github.com/yourorg/sumika-api/internal/canon"
	"github.com/yourorg/sumika-api/internal/events"
	"github.com/yourorg/sumika-api/internal/filter"
	"github.com/yourorg/sumika-api/internal/redisx"
	"github.com/yourorg/sumika-api/reinfolib"
)

// Searcher is the upstream fetch half of the pipeline.
type Searcher interface {
	Search(ctx context.Context, req reinfolib.SearchRequest) ([]reinfolib.Property, error)
}

type SearchDeps struct {
	Redis  *redisx.Client
	Search Searcher
	// Refetch enqueues a background refresh for a stale cache entry.
	Refetch func(cacheKey string, req reinfolib.SearchRequest)
	Pub     events.Publisher
	Log     *slog.Logger
	// TTL and staleness tuning
	CacheTTL    time.Duration
	StaleAfter  time.Duration
	NegativeTTL time.Duration
}

// Envelope is the cached search result: the tagged outcome plus
// freshness metadata.
type Envelope struct {
	Outcome filter.Outcome `json:"outcome"`
	Meta    struct {
		LastFetch  time.Time `json:"last_fetch_at"`
		StaleAfter time.Time `json:"stale_after"`
		TTLSeconds int       `json:"ttl_seconds"`
	} `json:"meta"`
}

// CacheKey derives a stable key for a search request. The query
// parameters cover area/year/quarter/walk; stations, bounds and
// layouts shape the client-side filter so they go in too.
func CacheKey(req reinfolib.SearchRequest) string {
	extra := make([]string, 0, len(req.Stations)+len(req.Layouts)+2)
	extra = append(extra, req.Stations...)
	extra = append(extra, req.Layouts...)
	if req.MinPrice > 0 {
		extra = append(extra, "min="+strconv.FormatFloat(req.MinPrice, 'f', -1, 64))
	}
	if req.MaxPrice > 0 {
		extra = append(extra, "max="+strconv.FormatFloat(req.MaxPrice, 'f', -1, 64))
	}
	return canon.QueryKey(reinfolib.BuildQuery(req), extra...)
}

// RegisterSearch wires the cached search endpoint:
// stale-while-revalidate over Redis with a stampede lock, plus a
// cooldown key so a failing upstream is not hammered.
func RegisterSearch(r chi.Router, d SearchDeps) {
	r.Route("/v1/properties", func(r chi.Router) {
		r.Post("/search", func(w http.ResponseWriter, req *http.Request) {
			var body reinfolib.SearchRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
				return
			}
			search(w, req, d, body)
		})
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			search(w, req, d, httpapi.ParseSearchQuery(req))
		})
	})
}

func search(w http.ResponseWriter, req *http.Request, d SearchDeps, body reinfolib.SearchRequest) {
	ctx := req.Context()
	key := CacheKey(body)
	cacheKey := "search:q:" + key
	missKey := "search:miss:" + key

	if ok, _ := d.Redis.Exists(ctx, missKey); ok {
		// Recent upstream failure for this query; don't retry yet.
		render.JSON(w, req, map[string]any{
			"ok":         false,
			"error":      "物件情報の取得に失敗しました",
			"cooldown":   true,
			"count":      0,
			"properties": []reinfolib.Property{},
		})
		return
	}

	var env Envelope
	if err := d.Redis.GetJSON(ctx, cacheKey, &env); err == nil {
		stale := time.Now().After(env.Meta.StaleAfter)
		if stale && d.Refetch != nil {
			d.Refetch(key, body)
		}
		serveEnvelope(w, req, env, "cache", stale)
		return
	}

	// Cache miss: take a short lock so concurrent identical searches
	// don't all hit the upstream.
	if ok, _ := d.Redis.SetNX(ctx, "search:lock:"+key, "1", 8*time.Second); !ok {
		render.Status(req, http.StatusAccepted)
		render.JSON(w, req, map[string]any{"ok": false, "in_progress": true})
		return
	}

	env, err := d.RunAndCache(ctx, body)
	if err != nil {
		d.log().Error("cached search pipeline failed", "err", err)
		negTTL := d.NegativeTTL
		if negTTL <= 0 {
			negTTL = time.Minute
		}
		_ = d.Redis.Set(ctx, missKey, "1", negTTL)
		render.JSON(w, req, map[string]any{
			"ok":         false,
			"error":      "物件情報の取得に失敗しました",
			"count":      0,
			"properties": []reinfolib.Property{},
		})
		return
	}
	serveEnvelope(w, req, env, "fresh", false)
}

// RunAndCache executes the pipeline for req and rewrites its cache
// entry. The background refresher uses it too.
func (d SearchDeps) RunAndCache(ctx context.Context, req reinfolib.SearchRequest) (Envelope, error) {
	props, err := d.Search.Search(ctx, req)
	if err != nil {
		return Envelope{}, err
	}
	outcome := filter.Apply(props, req)

	var env Envelope
	env.Outcome = outcome
	env.Meta.LastFetch = time.Now()
	env.Meta.StaleAfter = env.Meta.LastFetch.Add(orDefault(d.StaleAfter, 5*time.Minute))
	env.Meta.TTLSeconds = int(orDefault(d.CacheTTL, time.Hour).Seconds())

	cacheKey := "search:q:" + CacheKey(req)
	if err := d.Redis.SetJSON(ctx, cacheKey, env, time.Duration(env.Meta.TTLSeconds)*time.Second); err != nil {
		d.log().Warn("search cache write failed", "err", err)
	}

	if d.Pub != nil {
		d.Pub.PublishSearchCompleted(ctx, events.SearchCompleted{
			Station:  req.PrimaryStation(),
			Count:    len(outcome.Properties),
			Fallback: outcome.Kind == filter.KindFallback,
		})
	}
	return env, nil
}

func serveEnvelope(w http.ResponseWriter, req *http.Request, env Envelope, source string, stale bool) {
	resp := map[string]any{
		"ok":         true,
		"source":     source,
		"stale":      stale,
		"kind":       env.Outcome.Kind,
		"count":      len(env.Outcome.Properties),
		"properties": env.Outcome.Properties,
		"meta":       env.Meta,
	}
	if env.Outcome.Reason != "" {
		resp["reason"] = env.Outcome.Reason
	}
	render.JSON(w, req, resp)
}

func (d SearchDeps) log() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}

func orDefault(a, b time.Duration) time.Duration {
	if a > 0 {
		return a
	}
	return b
}
