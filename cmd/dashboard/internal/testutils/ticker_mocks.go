package testutils

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/ticker"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type MockRand struct {
	ValInt   int
	ValFloat float64
}

func (m *MockRand) Intn(n int) int   { return m.ValInt }
func (m *MockRand) Float64() float64 { return m.ValFloat }

// ManualClock hands out tickers that only fire when the test says so.
type ManualClock struct {
	Mu          sync.Mutex
	CurrentTime time.Time
	Interval    time.Duration
	ticks       []*ManualTick
}

func (m *ManualClock) Now() time.Time {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.CurrentTime
}

func (m *ManualClock) NewTicker(d time.Duration) ticker.Tick {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Interval = d
	t := &ManualTick{ch: make(chan time.Time)}
	m.ticks = append(m.ticks, t)
	return t
}

// Fire advances time by one interval and delivers it to every live ticker.
// It reports whether any loop accepted the fire within the timeout.
func (m *ManualClock) Fire(timeout time.Duration) bool {
	m.Mu.Lock()
	m.CurrentTime = m.CurrentTime.Add(m.Interval)
	now := m.CurrentTime
	ticks := append([]*ManualTick(nil), m.ticks...)
	m.Mu.Unlock()

	delivered := false
	for _, t := range ticks {
		if t.deliver(now, timeout) {
			delivered = true
		}
	}
	return delivered
}

type ManualTick struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *ManualTick) C() <-chan time.Time { return t.ch }

func (t *ManualTick) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *ManualTick) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *ManualTick) deliver(now time.Time, timeout time.Duration) bool {
	select {
	case t.ch <- now:
		return true
	case <-time.After(timeout):
		return false
	}
}

// MetricsBox is a minimal Updater for ticker tests.
type MetricsBox struct {
	Mu      sync.Mutex
	Metrics models.LiveMetrics
}

func (b *MetricsBox) Update(fn func(models.LiveMetrics) models.LiveMetrics) models.LiveMetrics {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	b.Metrics = fn(b.Metrics)
	return b.Metrics
}

func (b *MetricsBox) Get() models.LiveMetrics {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return b.Metrics
}

type MockSink struct {
	SinkName   string
	Mu         sync.Mutex
	Ticks      []models.MetricsTick
	ShouldFail bool
}

func (m *MockSink) Name() string { return m.SinkName }

func (m *MockSink) Publish(ctx context.Context, tick models.MetricsTick) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.ShouldFail {
		return errors.New("sink error")
	}
	m.Ticks = append(m.Ticks, tick)
	return nil
}

func (m *MockSink) Received() []models.MetricsTick {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return append([]models.MetricsTick(nil), m.Ticks...)
}
