package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	httpapi "github.com/yourorg/sumika-api/http"
	httpv1 "github.com/yourorg/sumika-api/http/v1"
	"github.com/yourorg/sumika-api/internal/env"
	"github.com/yourorg/sumika-api/internal/events"
	"github.com/yourorg/sumika-api/internal/logger"
	"github.com/yourorg/sumika-api/internal/redisx"
	"github.com/yourorg/sumika-api/internal/refresh"
	"github.com/yourorg/sumika-api/internal/stations"
	"github.com/yourorg/sumika-api/internal/store"
	"github.com/yourorg/sumika-api/internal/trends"
	"github.com/yourorg/sumika-api/lifull"
	"github.com/yourorg/sumika-api/reinfolib"
)

func main() {
	env.Load()
	log := logger.New(logger.ParseLevel(env.Get("LOG_LEVEL", "info")), env.GetBool("LOG_JSON", false))
	slog.SetDefault(log)

	port := env.GetInt("PORT", 4002)

	apiKey := env.Get("REINFOLIB_API_KEY", "")
	if apiKey == "" {
		log.Warn("REINFOLIB_API_KEY not set; searches will return empty results")
	}
	source := &multiSource{
		primary: reinfolib.NewClient(apiKey, log),
		log:     log,
	}
	if token := env.Get("LIFULL_API_TOKEN", ""); token != "" {
		source.rental = lifull.NewClient(token, log)
	}

	pub := events.NewInMemory(64)
	monitor := &trends.Monitor{Pub: pub, Log: log}
	go monitor.Run(context.Background())

	var st *store.Store
	if dsn := env.Get("PG_DSN", ""); dsn != "" {
		var err error
		st, err = store.Open(dsn)
		if err != nil {
			log.Error("postgres open failed", "err", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			log.Error("postgres unreachable", "err", err)
			os.Exit(1)
		}
		if err := st.Migrate(ctx); err != nil {
			log.Error("migrate failed", "err", err)
			os.Exit(1)
		}
	} else {
		log.Warn("PG_DSN not set; favorites endpoints disabled")
	}

	cached := httpv1.SearchDeps{
		Search:      source,
		Pub:         pub,
		Log:         log,
		CacheTTL:    env.GetDuration("SEARCH_CACHE_TTL", time.Hour),
		StaleAfter:  env.GetDuration("SEARCH_STALE_AFTER", 5*time.Minute),
		NegativeTTL: env.GetDuration("SEARCH_NEGATIVE_TTL", time.Minute),
	}
	if addr := env.Get("REDIS_ADDR", ""); addr != "" {
		cached.Redis = redisx.New(addr, env.Get("REDIS_PASSWORD", ""), env.GetInt("REDIS_DB", 0))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cached.Redis.Ping(ctx); err != nil {
			log.Warn("redis unreachable; cached search disabled", "err", err)
			cached.Redis = nil
		}
		cancel()
	}
	if cached.Redis != nil {
		ref := refresh.New(256, env.GetInt("REFRESH_WORKERS", 2), func(ctx context.Context, j refresh.Job) {
			if _, err := cached.RunAndCache(ctx, j.Request); err != nil {
				log.Warn("background refresh failed", "key", j.CacheKey, "err", err)
			}
		})
		cached.Refetch = func(key string, req reinfolib.SearchRequest) {
			ref.Enqueue(refresh.Job{CacheKey: key, Request: req})
		}
	}

	router := BuildRouter(httpapi.SearchDeps{Search: source, Pub: pub, Log: log}, cached, st)

	log.Info("sumika-api listening", "port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), logger.Middleware(log, router)); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// multiSource merges the government transaction feed with the LIFULL
// rental feed when a token is configured. A failing supplement never
// sinks the primary results.
type multiSource struct {
	primary *reinfolib.Client
	rental  *lifull.Client
	log     *slog.Logger
}

func (m *multiSource) Search(ctx context.Context, req reinfolib.SearchRequest) ([]reinfolib.Property, error) {
	props, err := m.primary.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	station := req.PrimaryStation()
	if m.rental == nil || station == "" {
		return props, nil
	}
	geo := stations.Lookup(station)
	extra, err := m.rental.Search(ctx, lifull.SearchParams{FullAddr: geo.Prefecture + geo.Ward})
	if err != nil {
		m.log.Warn("rental supplement failed", "station", station, "err", err)
		return props, nil
	}
	return append(props, extra...), nil
}
