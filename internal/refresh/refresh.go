package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/yourorg/sumika-api/reinfolib"
)

// Job asks for one cached search to be re-run and rewritten. CacheKey
// doubles as the dedupe key so a hot search enqueues at most once.
type Job struct {
	CacheKey string
	Request  reinfolib.SearchRequest
}

// Refresher is a small keyed worker pool for background cache
// refreshes. Saturation drops jobs instead of blocking request
// handlers; a stale-but-served entry will get another chance on the
// next hit.
type Refresher struct {
	ch    chan Job
	inFly sync.Map // cache key -> struct{}
	Do    func(ctx context.Context, j Job)
}

func New(capacity int, workerCount int, do func(ctx context.Context, j Job)) *Refresher {
	if capacity <= 0 {
		capacity = 256
	}
	if workerCount <= 0 {
		workerCount = 2
	}
	r := &Refresher{ch: make(chan Job, capacity), Do: do}
	for i := 0; i < workerCount; i++ {
		go r.worker()
	}
	return r
}

func (r *Refresher) Enqueue(j Job) {
	if _, exists := r.inFly.LoadOrStore(j.CacheKey, struct{}{}); exists {
		return
	}
	select {
	case r.ch <- j:
	default:
		// drop if saturated
		r.inFly.Delete(j.CacheKey)
	}
}

func (r *Refresher) worker() {
	for j := range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		func() {
			defer func() {
				r.inFly.Delete(j.CacheKey)
				cancel()
			}()
			if r.Do != nil {
				r.Do(ctx, j)
			}
		}()
	}
}
