package publisher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/pkg/config"
)

// TopicSpec describes the tick topic. Ticks are keyed by source, so the
// partition count caps how many shells are consumed in parallel.
type TopicSpec struct {
	Name              string
	Partitions        int
	ReplicationFactor int
}

func TopicSpecFrom(cfg config.KafkaConfig) TopicSpec {
	return TopicSpec{
		Name:              cfg.Topic,
		Partitions:        max(cfg.Partitions, 1),
		ReplicationFactor: max(cfg.ReplicationFactor, 1),
	}
}

// readiness polls after a create request; the broker propagates metadata
// asynchronously
var readiness = []time.Duration{
	100 * time.Millisecond,
	200 * time.Millisecond,
	400 * time.Millisecond,
	800 * time.Millisecond,
}

type TopicCreator struct {
	logger  *zap.Logger
	dialer  KafkaDialer
	sleeper Sleeper
}

func NewTopicCreator(logger *zap.Logger, dialer KafkaDialer, sleeper Sleeper) *TopicCreator {
	return &TopicCreator{
		logger:  logger,
		dialer:  dialer,
		sleeper: sleeper,
	}
}

// Ensure returns nil once spec.Name exists on the cluster. An existing
// topic is left alone even when its partition count differs.
func (tc *TopicCreator) Ensure(ctx context.Context, brokers []string, spec TopicSpec) error {
	conn, err := tc.dialAny(ctx, brokers)
	if err != nil {
		return err
	}
	defer conn.Close()

	if n := partitionCount(conn, spec.Name); n > 0 {
		if n < spec.Partitions {
			tc.logger.Warn("Topic has fewer partitions than configured",
				zap.String("topic", spec.Name),
				zap.Int("have", n),
				zap.Int("want", spec.Partitions),
			)
		}
		return nil
	}

	if err := tc.create(ctx, conn, spec); err != nil {
		return err
	}
	return tc.await(ctx, conn, spec)
}

func (tc *TopicCreator) dialAny(ctx context.Context, brokers []string) (KafkaConn, error) {
	errs := make([]error, 0, len(brokers))
	for _, addr := range brokers {
		conn, err := tc.dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			return conn, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", addr, err))
	}
	return nil, fmt.Errorf("dial brokers: %w", errors.Join(errs...))
}

// create sends the request to the controller, the only broker that
// accepts it.
func (tc *TopicCreator) create(ctx context.Context, conn KafkaConn, spec TopicSpec) error {
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("lookup controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	cc, err := tc.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", addr, err)
	}
	defer cc.Close()

	err = cc.CreateTopics(kafka.TopicConfig{
		Topic:             spec.Name,
		NumPartitions:     spec.Partitions,
		ReplicationFactor: spec.ReplicationFactor,
	})
	// another dashboard may have won the race
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", spec.Name, err)
	}
	tc.logger.Info("Topic create requested",
		zap.String("topic", spec.Name),
		zap.Int("partitions", spec.Partitions),
		zap.Int("replication_factor", spec.ReplicationFactor),
	)
	return nil
}

func (tc *TopicCreator) await(ctx context.Context, conn KafkaConn, spec TopicSpec) error {
	for _, wait := range readiness {
		if err := ctx.Err(); err != nil {
			return err
		}
		tc.sleeper.Sleep(wait)
		if n := partitionCount(conn, spec.Name); n > 0 {
			tc.logger.Info("Topic is ready", zap.String("topic", spec.Name), zap.Int("partitions", n))
			return nil
		}
	}
	return fmt.Errorf("topic %s has no partitions after %d checks", spec.Name, len(readiness))
}

func partitionCount(conn KafkaConn, topic string) int {
	partitions, err := conn.ReadPartitions(topic)
	if err != nil {
		return 0
	}
	return len(partitions)
}
