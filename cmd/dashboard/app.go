package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/hub"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/protocol"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/publisher"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/server"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/telemetry"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/ticker"
	"github.com/shubham-shewale/uptip/pkg/config"
	"github.com/shubham-shewale/uptip/pkg/models"
)

// app is the fully wired dashboard process.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	shell   *shell.Shell
	metrics *telemetry.Registry
	live    *server.LiveStream
	store   repository.FeedStore
	hub     *hub.Hub
	kafka   *publisher.KafkaSink
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{
		cfg:     cfg,
		logger:  logger,
		shell:   shell.New(logger),
		metrics: telemetry.NewRegistry(),
		live:    server.NewLiveStream(),
	}

	sinks := []ticker.Sink{a.metrics, a.live}

	switch cfg.Gateway.Feed {
	case config.FeedRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		a.store = repository.NewRedisStore(rdb)
		// without Kafka nothing else feeds Redis
		if !cfg.Kafka.Enabled {
			sinks = append(sinks, repository.NewFeedSink(a.store, protocol.TopicMetrics))
		}
	default:
		a.store = repository.NewMemoryStore()
		sinks = append(sinks, repository.NewFeedSink(a.store, protocol.TopicMetrics))
	}

	if cfg.Kafka.Enabled {
		creator := publisher.NewTopicCreator(logger, &publisher.RealKafkaDialer{Dialer: kafka.DefaultDialer}, publisher.RealSleeper{})
		if err := creator.Ensure(ctx, cfg.Kafka.Brokers, publisher.TopicSpecFrom(cfg.Kafka)); err != nil {
			// the broker may still auto-create it on first write
			logger.Warn("Kafka topic not ensured", zap.String("topic", cfg.Kafka.Topic), zap.Error(err))
		}
		a.kafka = publisher.NewKafkaSink(publisher.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), logger)
		sinks = append(sinks, a.kafka)
	}

	for i, s := range sinks {
		sinks[i] = a.metrics.Instrument(s)
	}

	a.hub = hub.NewHub(ctx, a.store, a.shell, logger)
	a.hub.OnClientCount(func(n int) { a.metrics.WSClients.Set(float64(n)) })

	a.shell.OnViewChange(func(requested string, active models.ViewID) {
		a.metrics.ObserveView(requested, active)
		if err := a.hub.PublishView(context.Background(), active); err != nil {
			logger.Warn("View publish failed", zap.String("view", string(active)), zap.Error(err))
		}
	})
	// view subscribers get a snapshot before the first navigation
	if err := a.hub.PublishView(ctx, a.shell.View()); err != nil {
		logger.Warn("Initial view publish failed", zap.Error(err))
	}

	a.shell.Attach(ticker.NewTicker(
		logger,
		a.shell,
		ticker.NewRealRand(cfg.Ticker.Seed),
		ticker.RealClock{},
		cfg.Ticker.Interval,
		cfg.Ticker.Source,
		sinks...,
	))
	return a, nil
}

// close runs after the HTTP server has stopped: ticker first, then the
// sinks it was feeding.
func (a *app) close() error {
	a.shell.Close()

	var errs []error
	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka: %w", err))
		}
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close feed store: %w", err))
	}
	return errors.Join(errs...)
}
