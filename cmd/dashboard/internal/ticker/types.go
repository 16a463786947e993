package ticker

import (
	"context"
	"math/rand"
	"time"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// for deterministic testing
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Tick
}

// Tick is the subset of *time.Ticker the loop needs.
type Tick interface {
	C() <-chan time.Time
	Stop()
}

// for deterministic values
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Updater is the single mutation funnel for the shared metrics.
type Updater interface {
	Update(fn func(models.LiveMetrics) models.LiveMetrics) models.LiveMetrics
}

// Sink receives every tick after it has been applied. A failing sink is
// logged and skipped; it never stops the ticker.
type Sink interface {
	Name() string
	Publish(ctx context.Context, tick models.MetricsTick) error
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
func (RealClock) NewTicker(d time.Duration) Tick {
	return realTick{time.NewTicker(d)}
}

type realTick struct{ t *time.Ticker }

func (r realTick) C() <-chan time.Time { return r.t.C }
func (r realTick) Stop()               { r.t.Stop() }

type RealRand struct{ *rand.Rand }

func (r RealRand) Intn(n int) int   { return r.Rand.Intn(n) }
func (r RealRand) Float64() float64 { return r.Rand.Float64() }

// NewRealRand seeds from the clock when seed is 0.
func NewRealRand(seed int64) RealRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return RealRand{rand.New(rand.NewSource(seed))}
}
