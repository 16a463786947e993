package telemetry_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/telemetry"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type failingSink struct{}

func (failingSink) Name() string { return "kafka" }
func (failingSink) Publish(context.Context, models.MetricsTick) error {
	return errors.New("broker down")
}

func TestRegistry_TickSink(t *testing.T) {
	reg := telemetry.NewRegistry()
	tick := models.MetricsTick{Metrics: models.LiveMetrics{Price: 4290.5, VesselCount: 4, StockLevel: 61, OMCCount: 47}}

	require.NoError(t, reg.Publish(context.Background(), tick))
	require.NoError(t, reg.Publish(context.Background(), tick))

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.Ticks))
	assert.Equal(t, 4290.5, testutil.ToFloat64(reg.Price))
	assert.Equal(t, 61.0, testutil.ToFloat64(reg.StockLevel))
	assert.Equal(t, 47.0, testutil.ToFloat64(reg.OMCCount))
}

func TestRegistry_ObserveView(t *testing.T) {
	reg := telemetry.NewRegistry()
	reg.ObserveView("pricing", models.ViewPricing)
	reg.ObserveView("bogus", models.ViewLanding)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ViewChanges.WithLabelValues("pricing", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ViewChanges.WithLabelValues("landing", "true")))
}

func TestRegistry_InstrumentCountsErrors(t *testing.T) {
	reg := telemetry.NewRegistry()
	s := reg.Instrument(failingSink{})

	assert.Error(t, s.Publish(context.Background(), models.MetricsTick{}))
	assert.Equal(t, "kafka", s.Name())
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SinkErrors.WithLabelValues("kafka")))
}

func TestRegistry_Handler(t *testing.T) {
	reg := telemetry.NewRegistry()
	reg.ObserveMetrics(models.DefaultLiveMetrics())

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "uptip_live_price_ugx 4285"))
}
