package telemetry

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// Registry holds every Prometheus collector the dashboard exports.
type Registry struct {
	reg *prometheus.Registry

	Price       prometheus.Gauge
	VesselCount prometheus.Gauge
	StockLevel  prometheus.Gauge
	OMCCount    prometheus.Gauge

	Ticks       prometheus.Counter
	ViewChanges *prometheus.CounterVec
	SinkErrors  *prometheus.CounterVec
	WSClients   prometheus.Gauge
	Renders     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		Price: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uptip_live_price_ugx",
			Help: "Current simulated PMS price in UGX per litre",
		}),
		VesselCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uptip_live_vessels_in_transit",
			Help: "Current simulated vessels in transit",
		}),
		StockLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uptip_live_stock_level_percent",
			Help: "Current simulated national stock level (20-100)",
		}),
		OMCCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uptip_live_active_omcs",
			Help: "Active oil marketing companies",
		}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "uptip_ticks_total",
			Help: "Total number of live-metric ticks applied",
		}),
		ViewChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uptip_view_changes_total",
			Help: "Navigation events by resulting view and whether the request fell back",
		}, []string{"view", "fallback"}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uptip_sink_errors_total",
			Help: "Tick publish failures by sink",
		}, []string{"sink"}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uptip_ws_clients",
			Help: "Websocket clients with at least one subscription",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uptip_view_renders_total",
			Help: "Rendered pages by view",
		}, []string{"view"}),
	}

	r.reg.MustRegister(
		r.Price, r.VesselCount, r.StockLevel, r.OMCCount,
		r.Ticks, r.ViewChanges, r.SinkErrors, r.WSClients, r.Renders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveMetrics sets the live gauges.
func (r *Registry) ObserveMetrics(m models.LiveMetrics) {
	r.Price.Set(m.Price)
	r.VesselCount.Set(float64(m.VesselCount))
	r.StockLevel.Set(m.StockLevel)
	r.OMCCount.Set(float64(m.OMCCount))
}

// ObserveView counts one navigation.
func (r *Registry) ObserveView(requested string, active models.ViewID) {
	fallback := "false"
	if string(active) != requested {
		fallback = "true"
	}
	r.ViewChanges.WithLabelValues(string(active), fallback).Inc()
}

// Name, Publish make the registry a ticker sink.
func (r *Registry) Name() string { return "telemetry" }

func (r *Registry) Publish(_ context.Context, tick models.MetricsTick) error {
	r.Ticks.Inc()
	r.ObserveMetrics(tick.Metrics)
	return nil
}
