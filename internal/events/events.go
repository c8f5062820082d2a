package events

import (
	"context"
)

// SearchCompleted is published after every pipeline run so consumers
// can watch how often live results get replaced by fallback data.
type SearchCompleted struct {
	Station  string
	Count    int
	Fallback bool
}

type Publisher interface {
	PublishSearchCompleted(ctx context.Context, evt SearchCompleted)
	SubscribeSearchCompleted() <-chan SearchCompleted
}

type inMemory struct{ ch chan SearchCompleted }

func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan SearchCompleted, buffer)}
}

// PublishSearchCompleted drops the event when the buffer is full;
// observers must never slow the pipeline down.
func (m *inMemory) PublishSearchCompleted(_ context.Context, evt SearchCompleted) {
	select {
	case m.ch <- evt:
	default:
	}
}

func (m *inMemory) SubscribeSearchCompleted() <-chan SearchCompleted { return m.ch }
