package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpv1 "github.com/yourorg/sumika-api/http/v1"
	"github.com/yourorg/sumika-api/internal/env"
	"github.com/yourorg/sumika-api/internal/logger"
	"github.com/yourorg/sumika-api/internal/redisx"
	"github.com/yourorg/sumika-api/reinfolib"
)

// The warmer keeps the search cache hot for the stations people
// actually browse, so the first swipe of the day never waits on the
// upstream.
func main() {
	env.Load()
	log := logger.New(logger.ParseLevel(env.Get("LOG_LEVEL", "info")), env.GetBool("LOG_JSON", false))
	slog.SetDefault(log)

	apiKey := env.Must("REINFOLIB_API_KEY")
	redisAddr := env.Must("REDIS_ADDR")

	stationList := env.GetList("WARMER_STATIONS")
	if len(stationList) == 0 {
		log.Error("WARMER_STATIONS must be provided")
		os.Exit(1)
	}

	interval := env.GetDuration("WARMER_INTERVAL", 6*time.Hour)
	pause := env.GetDuration("WARMER_PAUSE", 1500*time.Millisecond)
	requestTimeout := env.GetDuration("WARMER_REQUEST_TIMEOUT", 12*time.Second)
	runOnce := env.GetBool("WARMER_RUN_ONCE", false)
	year := env.Get("WARMER_YEAR", "")
	quarter := env.Get("WARMER_QUARTER", "")

	deps := httpv1.SearchDeps{
		Redis:      redisx.New(redisAddr, env.Get("REDIS_PASSWORD", ""), env.GetInt("REDIS_DB", 0)),
		Search:     reinfolib.NewClient(apiKey, log),
		Log:        log,
		CacheTTL:   env.GetDuration("SEARCH_CACHE_TTL", time.Hour),
		StaleAfter: env.GetDuration("SEARCH_STALE_AFTER", 5*time.Minute),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := deps.Redis.Ping(ctx); err != nil {
		cancel()
		log.Error("redis unreachable", "err", err)
		os.Exit(1)
	}
	cancel()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	warm := func() {
		for _, station := range stationList {
			if rootCtx.Err() != nil {
				return
			}
			req := reinfolib.SearchRequest{
				Stations: []string{station},
				Year:     year,
				Quarter:  quarter,
			}
			jobCtx, cancel := context.WithTimeout(rootCtx, requestTimeout)
			envl, err := deps.RunAndCache(jobCtx, req)
			cancel()
			if err != nil {
				log.Warn("warm failed", "station", station, "err", err)
			} else {
				log.Info("warmed", "station", station, "count", len(envl.Outcome.Properties), "kind", envl.Outcome.Kind)
			}
			select {
			case <-rootCtx.Done():
				return
			case <-time.After(pause):
			}
		}
	}

	warm()
	if runOnce {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-rootCtx.Done():
			if !errors.Is(rootCtx.Err(), context.Canceled) {
				log.Error("warmer stopped", "err", rootCtx.Err())
			}
			return
		case <-ticker.C:
			warm()
		}
	}
}
