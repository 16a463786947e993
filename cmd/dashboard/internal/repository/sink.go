package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// FeedSink publishes ticker output onto a FeedStore's metrics topic.
type FeedSink struct {
	store FeedStore
	topic string
}

func NewFeedSink(store FeedStore, topic string) *FeedSink {
	return &FeedSink{store: store, topic: topic}
}

func (s *FeedSink) Name() string { return "feed:" + s.topic }

func (s *FeedSink) Publish(ctx context.Context, tick models.MetricsTick) error {
	payload, err := json.Marshal(tick)
	if err != nil {
		return fmt.Errorf("marshal tick: %w", err)
	}
	return s.store.Publish(ctx, s.topic, string(payload))
}
