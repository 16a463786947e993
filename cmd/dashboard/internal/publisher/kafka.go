package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// KafkaSink publishes every tick to Kafka behind a circuit breaker, so an
// unreachable broker costs one failed write per open window instead of one per tick.
type KafkaSink struct {
	writer  KafkaWriter
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewKafkaSink(writer KafkaWriter, logger *zap.Logger) *KafkaSink {
	s := &KafkaSink{writer: writer, logger: logger}
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-publish",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state change",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return s
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Publish(ctx context.Context, tick models.MetricsTick) error {
	payload, err := json.Marshal(tick)
	if err != nil {
		return fmt.Errorf("marshal tick: %w", err)
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return nil, s.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(tick.Source), // one partition per source keeps seq order
			Value: payload,
		})
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// State exposes the breaker state for tests and health output.
func (s *KafkaSink) State() gobreaker.State { return s.breaker.State() }

// Close flushes the writer buffer.
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
