package telemetry

import (
	"context"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// Sink mirrors ticker.Sink to avoid an import cycle through the shell.
type Sink interface {
	Name() string
	Publish(ctx context.Context, tick models.MetricsTick) error
}

type instrumented struct {
	Sink
	reg *Registry
}

// Instrument counts publish failures of s under its name.
func (r *Registry) Instrument(s Sink) Sink {
	return instrumented{Sink: s, reg: r}
}

func (i instrumented) Publish(ctx context.Context, tick models.MetricsTick) error {
	err := i.Sink.Publish(ctx, tick)
	if err != nil {
		i.reg.SinkErrors.WithLabelValues(i.Name()).Inc()
	}
	return err
}
