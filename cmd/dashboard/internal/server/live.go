package server

import (
	"context"
	"sync"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// LiveStream fans ticks out to SSE subscribers. It is registered as a ticker
// sink. Slow subscribers miss ticks rather than stall the ticker.
type LiveStream struct {
	mu   sync.Mutex
	subs map[chan models.MetricsTick]struct{}
}

func NewLiveStream() *LiveStream {
	return &LiveStream{subs: make(map[chan models.MetricsTick]struct{})}
}

func (l *LiveStream) Name() string { return "live" }

func (l *LiveStream) Publish(_ context.Context, tick models.MetricsTick) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- tick:
		default:
		}
	}
	return nil
}

// Subscribe returns a tick channel and the func that releases it.
func (l *LiveStream) Subscribe() (<-chan models.MetricsTick, func()) {
	ch := make(chan models.MetricsTick, 4)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, ch)
			l.mu.Unlock()
		})
	}
}

func (l *LiveStream) Subscribers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
