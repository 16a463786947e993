package ticker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/pkg/models"
)

const (
	priceSwing = 10.0 // full width, so ±5
	stockSwing = 5.0  // full width, so ±2.5
)

// Step is one bounded random-walk perturbation of the live metrics.
// OMCCount is carried forward untouched.
func Step(prev models.LiveMetrics, rnd Rand) models.LiveMetrics {
	next := prev
	next.Price = prev.Price + (rnd.Float64()-0.5)*priceSwing
	next.VesselCount = max(models.MinVesselCount, prev.VesselCount+rnd.Intn(3)-1)
	next.StockLevel = clamp(prev.StockLevel+(rnd.Float64()-0.5)*stockSwing, models.MinStockLevel, models.MaxStockLevel)
	return next
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}

type Ticker struct {
	logger   *zap.Logger
	state    Updater
	sinks    []Sink
	rand     Rand
	clock    Clock
	interval time.Duration
	source   string
	boot     int64
	seq      int64
}

func NewTicker(
	logger *zap.Logger,
	state Updater,
	rnd Rand,
	clock Clock,
	interval time.Duration,
	source string,
	sinks ...Sink,
) *Ticker {
	return &Ticker{
		logger:   logger,
		state:    state,
		sinks:    sinks,
		rand:     rnd,
		clock:    clock,
		interval: interval,
		source:   source,
		boot:     clock.Now().UnixMicro(),
	}
}

// Handle owns a running ticker loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to exit. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Start launches the loop and returns the handle that must be stopped by the owner.
func (t *Ticker) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	tick := t.clock.NewTicker(t.interval)
	go func() {
		defer close(h.done)
		defer tick.Stop()
		t.run(ctx, tick)
	}()
	return h
}

func (t *Ticker) run(ctx context.Context, tick Tick) {
	t.logger.Info("Ticker Started", zap.Duration("interval", t.interval), zap.String("source", t.source))
	defer t.logger.Info("Ticker Stopped", zap.Int64("last_seq", t.seq))

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C():
			// a fire racing with cancellation must not mutate
			if ctx.Err() != nil {
				return
			}
			t.tick(ctx)
		}
	}
}

func (t *Ticker) tick(ctx context.Context) {
	metrics := t.state.Update(func(prev models.LiveMetrics) models.LiveMetrics {
		return Step(prev, t.rand)
	})
	t.seq++

	update := models.MetricsTick{
		Source:    t.source,
		Metrics:   metrics,
		Timestamp: t.clock.Now().UnixMicro(),
		Boot:      t.boot,
		SeqID:     t.seq,
	}
	for _, s := range t.sinks {
		if err := s.Publish(ctx, update); err != nil {
			t.logger.Error("Sink Publish Error", zap.String("sink", s.Name()), zap.Error(err))
		}
	}
	t.logger.Debug("Tick", zap.Int64("seq_id", update.SeqID), zap.Float64("price", metrics.Price))
}
