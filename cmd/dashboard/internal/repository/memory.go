package repository

import (
	"context"
	"sync"
)

var _ FeedStore = (*MemoryStore)(nil)

type feedMessage struct {
	topic   string
	payload string
}

// MemoryStore is the single-process feed: the ticker publishes straight into it.
type MemoryStore struct {
	mu         sync.Mutex
	latest     map[string]string
	subscribed map[string]bool
	ch         chan feedMessage
	closed     bool
	done       chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		latest:     make(map[string]string),
		subscribed: make(map[string]bool),
		ch:         make(chan feedMessage, 256),
		done:       make(chan struct{}),
	}
}

func (m *MemoryStore) Publish(ctx context.Context, topic, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}

	m.latest[topic] = payload
	if !m.subscribed[topic] {
		return nil
	}
	select {
	case m.ch <- feedMessage{topic: topic, payload: payload}:
	default:
		// latest beats all; a slow reader skips frames
	}
	return nil
}

func (m *MemoryStore) GetSnapshots(ctx context.Context, topics []string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots := make(map[string]string, len(topics))
	for _, topic := range topics {
		if payload, ok := m.latest[topic]; ok {
			snapshots[topic] = payload
		}
	}
	return snapshots, nil
}

func (m *MemoryStore) SubscribeToFeed(ctx context.Context, topic string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribed[topic] = true
	return nil
}

func (m *MemoryStore) UnsubscribeFromFeed(ctx context.Context, topic string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscribed, topic)
	return nil
}

func (m *MemoryStore) RunPubSub(ctx context.Context, onMessage func(topic string, payload string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case msg := <-m.ch:
			onMessage(msg.topic, msg.payload)
		}
	}
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}
