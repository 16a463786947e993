package repository

import (
	"context"

	"github.com/shubham-shewale/uptip/pkg/models"
)

const (
	snapshotPrefix = models.FeedSnapshotPrefix
	channelPrefix  = models.FeedChannelPrefix
)

// FeedStore carries the latest payload per topic plus a live pub/sub stream.
type FeedStore interface {
	Publish(ctx context.Context, topic, payload string) error
	GetSnapshots(ctx context.Context, topics []string) (map[string]string, error)
	SubscribeToFeed(ctx context.Context, topic string) error
	UnsubscribeFromFeed(ctx context.Context, topic string) error
	RunPubSub(ctx context.Context, onMessage func(topic string, payload string))
	Close() error
}

type RateLimiter interface {
	Allow(ip string) (bool, error)
}

// SnapshotKey is where the latest payload for topic lives in Redis.
func SnapshotKey(topic string) string { return snapshotPrefix + topic }

// Channel is the Redis pub/sub channel for topic.
func Channel(topic string) string { return channelPrefix + topic }
