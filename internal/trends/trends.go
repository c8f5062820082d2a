package trends

import (
	"context"
	"log/slog"

	"github.com/yourorg/sumika-api/internal/events"
)

// Monitor consumes search.completed events and keeps running per-kind
// counters. A rising fallback share means the upstream is returning
// too little for the stations users actually search.
type Monitor struct {
	Pub events.Publisher
	Log *slog.Logger

	liveServed     int
	fallbackServed int
}

func (m *Monitor) Run(ctx context.Context) {
	log := m.Log
	if log == nil {
		log = slog.Default()
	}
	sub := m.Pub.SubscribeSearchCompleted()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sub:
			if evt.Fallback {
				m.fallbackServed++
			} else {
				m.liveServed++
			}
			log.Info("search completed",
				"station", evt.Station,
				"count", evt.Count,
				"fallback", evt.Fallback,
				"live_total", m.liveServed,
				"fallback_total", m.fallbackServed,
			)
		}
	}
}
