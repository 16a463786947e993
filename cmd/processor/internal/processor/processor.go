package processor

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/pkg/config"
	"github.com/shubham-shewale/uptip/pkg/models"
)

const (
	snapshotTTL = 1 * time.Hour
	feedTopic   = "metrics"
)

type Processor struct {
	cfg        *config.Config
	logger     Logger
	rdb        RedisClient
	reader     KafkaReader
	numWorkers int
}

func NewProcessor(cfg *config.Config, logger Logger, rdb RedisClient, reader KafkaReader) *Processor {
	return &Processor{
		cfg:        cfg,
		logger:     logger,
		rdb:        rdb,
		reader:     reader,
		numWorkers: cfg.Processor.NumWorkers,
	}
}

func (p *Processor) Run(ctx context.Context) error {
	workerChans := make([]chan []byte, p.numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < p.numWorkers; i++ {
		workerChans[i] = make(chan []byte, 100)
		wg.Add(1)
		go p.worker(i, workerChans[i], &wg)
	}

	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		p.logger.Info("Processor Started", zap.Int("workers", p.numWorkers))
		for {
			m, err := p.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				p.logger.Error("Kafka Read Error", zap.Error(err))
				continue
			}

			// Deterministic Sharding: Same source always goes to same worker
			workerID := getWorkerID(m.Key, p.numWorkers)

			select {
			case workerChans[workerID] <- m.Value:
			case <-ctx.Done():
				return
			default:
				// a newer tick from the same shell supersedes this one
				p.logger.Warn("Dropping slow packet", zap.String("key", string(m.Key)), zap.Int("worker_id", workerID))
			}
		}
	}()

	<-ctx.Done()
	p.logger.Info("Shutdown signal received, stopping processor...")

	// the dispatcher must be gone before the worker channels close
	<-dispatched
	for _, ch := range workerChans {
		close(ch)
	}
	p.logger.Info("Waiting for workers to drain...")
	wg.Wait()

	return nil
}

func (p *Processor) worker(id int, msgs <-chan []byte, wg *sync.WaitGroup) {
	defer wg.Done()
	ctx := context.Background()

	// Local state for deduplication (only works because of deterministic sharding)
	marks := make(map[string]watermark)

	for payload := range msgs {
		var tick models.MetricsTick
		if err := json.Unmarshal(payload, &tick); err != nil {
			p.logger.Error("JSON Unmarshal Error", zap.Error(err))
			continue
		}
		if tick.Source == "" {
			p.logger.Warn("Tick without source", zap.Int64("seq_id", tick.SeqID))
			continue
		}

		if !marks[tick.Source].admits(tick) {
			p.logger.Debug("Skipping duplicate tick",
				zap.String("source", tick.Source),
				zap.Int64("boot", tick.Boot),
				zap.Int64("seq_id", tick.SeqID),
			)
			continue
		}

		// Per-source latest, feed snapshot and fan-out in one round trip
		pipe := p.rdb.Pipeline()
		pipe.Set(ctx, models.SourceKey(tick.Source), payload, snapshotTTL)
		pipe.Set(ctx, models.FeedSnapshotPrefix+feedTopic, payload, snapshotTTL)
		pipe.Publish(ctx, models.FeedChannelPrefix+feedTopic, payload)

		_, err := pipe.Exec(ctx)
		if err != nil {
			p.logger.Error("Redis Pipeline Error", zap.Error(err), zap.String("source", tick.Source))
		} else {
			p.logger.Debug("Processed", zap.String("source", tick.Source), zap.Int("worker_id", id), zap.Int64("seq_id", tick.SeqID))
			marks[tick.Source] = watermark{boot: tick.Boot, seq: tick.SeqID}
		}
	}
}

// watermark is the last relayed (boot, seq) pair of a source. A shell
// restart starts a new boot with seq back at 1.
type watermark struct {
	boot int64
	seq  int64
}

func (w watermark) admits(tick models.MetricsTick) bool {
	if tick.Boot != w.boot {
		return tick.Boot > w.boot
	}
	return tick.SeqID > w.seq
}

func getWorkerID(key []byte, numWorkers int) int {
	h := fnv.New32a()
	h.Write(key)
	return int(h.Sum32() % uint32(numWorkers))
}
