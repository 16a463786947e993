package testutils

import (
	"context"
	"sync"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/protocol"
	"github.com/shubham-shewale/uptip/pkg/models"
)

// MockClient simulates a connected websocket client
type MockClient struct {
	IDVal    string
	Messages []protocol.WSResponse // Stores decoded JSON messages
	RawBytes []string              // Stores raw bytes
	Closed   bool
	Mu       sync.Mutex
}

func NewMockClient(id string) *MockClient {
	return &MockClient{IDVal: id, Messages: make([]protocol.WSResponse, 0)}
}

func (m *MockClient) ID() string { return m.IDVal }

func (m *MockClient) Close() {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Closed = true
}

func (m *MockClient) SendJSON(v interface{}) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if resp, ok := v.(protocol.WSResponse); ok {
		m.Messages = append(m.Messages, resp)
	}
}

func (m *MockClient) SendBytes(b []byte) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.RawBytes = append(m.RawBytes, string(b))
}

func (m *MockClient) LastMsg() protocol.WSResponse {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if len(m.Messages) == 0 {
		return protocol.WSResponse{}
	}
	return m.Messages[len(m.Messages)-1]
}

func (m *MockClient) LastMsgType() string { return m.LastMsg().Type }

func (m *MockClient) Raw() []string {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return append([]string(nil), m.RawBytes...)
}

// MockFeedStore simulates the feed backend
type MockFeedStore struct {
	SubscribedChannels map[string]int // topic -> count
	Published          map[string]string
	Mu                 sync.Mutex
}

func NewMockStore() *MockFeedStore {
	return &MockFeedStore{
		SubscribedChannels: make(map[string]int),
		Published:          make(map[string]string),
	}
}

func (m *MockFeedStore) Publish(ctx context.Context, topic, payload string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Published[topic] = payload
	return nil
}

func (m *MockFeedStore) GetSnapshots(ctx context.Context, topics []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, topic := range topics {
		if topic == protocol.TopicMetrics {
			out[topic] = `{"seq_id":1,"metrics":{"price":4285}}`
		}
	}
	return out, nil
}

func (m *MockFeedStore) SubscribeToFeed(ctx context.Context, topic string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.SubscribedChannels[topic]++
	return nil
}

func (m *MockFeedStore) UnsubscribeFromFeed(ctx context.Context, topic string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.SubscribedChannels[topic]--
	if m.SubscribedChannels[topic] <= 0 {
		delete(m.SubscribedChannels, topic)
	}
	return nil
}

func (m *MockFeedStore) RunPubSub(ctx context.Context, onMessage func(topic string, payload string)) {
	// No-op for unit tests
}

func (m *MockFeedStore) Close() error { return nil }

func (m *MockFeedStore) Count(topic string) int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.SubscribedChannels[topic]
}

// MockNavigator records SetView calls.
type MockNavigator struct {
	Mu    sync.Mutex
	Calls []string
}

func (m *MockNavigator) SetView(id string) models.ViewID {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls = append(m.Calls, id)
	return models.ParseView(id)
}
