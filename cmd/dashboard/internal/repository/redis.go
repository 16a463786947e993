package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotTTL = 1 * time.Hour

// Compile-time check to ensure RedisStore implements FeedStore
var _ FeedStore = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
	pubsub *redis.PubSub
	mu     sync.Mutex // guards pubsub subscribe/unsubscribe
}

func NewRedisStore(client *redis.Client) *RedisStore {
	ps := client.Subscribe(context.Background())
	return &RedisStore{
		client: client,
		pubsub: ps,
	}
}

// Publish stores the snapshot and fans it out in one pipeline.
func (r *RedisStore) Publish(ctx context.Context, topic, payload string) error {
	pipe := r.client.Pipeline()
	pipe.Set(ctx, SnapshotKey(topic), payload, snapshotTTL)
	pipe.Publish(ctx, Channel(topic), payload)
	_, err := pipe.Exec(ctx)
	return err
}

// GetSnapshots fetches the latest payload for each topic (MGET)
func (r *RedisStore) GetSnapshots(ctx context.Context, topics []string) (map[string]string, error) {
	if len(topics) == 0 {
		return nil, nil
	}

	keys := make([]string, len(topics))
	for i, topic := range topics {
		keys[i] = SnapshotKey(topic)
	}

	results, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	snapshots := make(map[string]string, len(topics))
	for i, val := range results {
		if payload, ok := val.(string); ok && payload != "" {
			snapshots[topics[i]] = payload
		}
	}
	return snapshots, nil
}

// SubscribeToFeed tells Redis we want to listen to this channel
func (r *RedisStore) SubscribeToFeed(ctx context.Context, topic string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pubsub.Subscribe(ctx, Channel(topic))
}

// UnsubscribeFromFeed tells Redis to stop sending messages for this channel
func (r *RedisStore) UnsubscribeFromFeed(ctx context.Context, topic string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pubsub.Unsubscribe(ctx, Channel(topic))
}

// RunPubSub blocks, handing every message to onMessage, until ctx ends or the store is closed.
func (r *RedisStore) RunPubSub(ctx context.Context, onMessage func(topic string, payload string)) {
	ch := r.pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			topic, found := strings.CutPrefix(msg.Channel, channelPrefix)
			if !found || topic == "" {
				continue
			}
			onMessage(topic, msg.Payload)
		}
	}
}

func (r *RedisStore) Close() error {
	if err := r.pubsub.Close(); err != nil {
		return err
	}
	return r.client.Close()
}
