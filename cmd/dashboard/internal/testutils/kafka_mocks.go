package testutils

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/publisher"
)

type MockKafkaWriter struct {
	Messages   []kafka.Message
	Mu         sync.Mutex
	ShouldFail bool
	Calls      int
	Closed     bool
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls++
	if m.ShouldFail {
		return errors.New("kafka error")
	}
	m.Messages = append(m.Messages, msgs...)
	return nil
}

func (m *MockKafkaWriter) Close() error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockKafkaWriter) CallCount() int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.Calls
}

type MockSleeper struct {
	Slept time.Duration
}

func (m *MockSleeper) Sleep(d time.Duration) { m.Slept += d }

// MockKafkaConn is a one-broker cluster. Partitions holds the topics it
// already knows; CreateTopics adds to it unless NotReady is set.
type MockKafkaConn struct {
	CreatedTopics []kafka.TopicConfig
	Partitions    map[string]int
	NotReady      bool
	CreateErr     error
}

func (m *MockKafkaConn) Controller() (kafka.Broker, error) {
	return kafka.Broker{Host: "localhost", Port: 9092}, nil
}
func (m *MockKafkaConn) Close() error { return nil }
func (m *MockKafkaConn) CreateTopics(topics ...kafka.TopicConfig) error {
	m.CreatedTopics = append(m.CreatedTopics, topics...)
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.NotReady {
		return nil
	}
	if m.Partitions == nil {
		m.Partitions = make(map[string]int)
	}
	for _, tc := range topics {
		m.Partitions[tc.Topic] = tc.NumPartitions
	}
	return nil
}
func (m *MockKafkaConn) ReadPartitions(topics ...string) ([]kafka.Partition, error) {
	var out []kafka.Partition
	for _, topic := range topics {
		for i := 0; i < m.Partitions[topic]; i++ {
			out = append(out, kafka.Partition{Topic: topic, ID: i})
		}
	}
	return out, nil
}

type MockKafkaDialer struct {
	ConnSpy   *MockKafkaConn
	Addresses []string
	Fail      bool
}

func (m *MockKafkaDialer) DialContext(ctx context.Context, network, address string) (publisher.KafkaConn, error) {
	m.Addresses = append(m.Addresses, address)
	if m.Fail {
		return nil, errors.New("dial refused")
	}
	if m.ConnSpy == nil {
		m.ConnSpy = &MockKafkaConn{}
	}
	return m.ConnSpy, nil
}
