package publisher_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/publisher"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/testutils"
	"github.com/shubham-shewale/uptip/pkg/config"
	"github.com/shubham-shewale/uptip/pkg/models"
)

func tick(seq int64) models.MetricsTick {
	return models.MetricsTick{
		Source:    "uptip-shell",
		Metrics:   models.DefaultLiveMetrics(),
		Timestamp: time.Unix(3, 0).UnixMicro(),
		SeqID:     seq,
	}
}

func TestKafkaSink_PublishesKeyedJSON(t *testing.T) {
	w := &testutils.MockKafkaWriter{}
	s := publisher.NewKafkaSink(w, zap.NewNop())

	require.NoError(t, s.Publish(context.Background(), tick(1)))
	assert.Equal(t, "kafka", s.Name())

	require.Len(t, w.Messages, 1)
	assert.Equal(t, "uptip-shell", string(w.Messages[0].Key))

	var got models.MetricsTick
	require.NoError(t, json.Unmarshal(w.Messages[0].Value, &got))
	assert.Equal(t, tick(1), got)
}

func TestKafkaSink_BreakerOpensAfterFailures(t *testing.T) {
	w := &testutils.MockKafkaWriter{ShouldFail: true}
	s := publisher.NewKafkaSink(w, zap.NewNop())

	for i := 1; i <= 3; i++ {
		assert.Error(t, s.Publish(context.Background(), tick(int64(i))))
	}
	assert.Equal(t, gobreaker.StateOpen, s.State())

	// open breaker short-circuits without touching the writer
	err := s.Publish(context.Background(), tick(4))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, w.CallCount())
}

func TestKafkaSink_Close(t *testing.T) {
	w := &testutils.MockKafkaWriter{}
	s := publisher.NewKafkaSink(w, zap.NewNop())
	require.NoError(t, s.Close())
	assert.True(t, w.Closed)
}

func TestTopicSpecFrom_Defaults(t *testing.T) {
	spec := publisher.TopicSpecFrom(config.KafkaConfig{Topic: "live_metrics", Partitions: 4})
	assert.Equal(t, publisher.TopicSpec{Name: "live_metrics", Partitions: 4, ReplicationFactor: 1}, spec)
}

func TestTopicCreator_CreatesMissingTopic(t *testing.T) {
	dialer := &testutils.MockKafkaDialer{}
	sleeper := &testutils.MockSleeper{}

	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, sleeper)
	err := tc.Ensure(context.Background(), []string{"broker:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 3, ReplicationFactor: 1})
	require.NoError(t, err)

	require.NotNil(t, dialer.ConnSpy, "dialer was never called")
	require.Len(t, dialer.ConnSpy.CreatedTopics, 1)
	assert.Equal(t, kafka.TopicConfig{Topic: "live_metrics", NumPartitions: 3, ReplicationFactor: 1}, dialer.ConnSpy.CreatedTopics[0])
	assert.Equal(t, []string{"broker:9092", "localhost:9092"}, dialer.Addresses)
	assert.Equal(t, 100*time.Millisecond, sleeper.Slept)
}

func TestTopicCreator_LeavesExistingTopic(t *testing.T) {
	dialer := &testutils.MockKafkaDialer{ConnSpy: &testutils.MockKafkaConn{Partitions: map[string]int{"live_metrics": 1}}}
	sleeper := &testutils.MockSleeper{}

	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, sleeper)
	err := tc.Ensure(context.Background(), []string{"broker:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 4, ReplicationFactor: 1})
	require.NoError(t, err)

	assert.Empty(t, dialer.ConnSpy.CreatedTopics)
	assert.Equal(t, []string{"broker:9092"}, dialer.Addresses)
	assert.Zero(t, sleeper.Slept)
}

func TestTopicCreator_ReportsUnreachableBrokers(t *testing.T) {
	dialer := &testutils.MockKafkaDialer{Fail: true}
	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, &testutils.MockSleeper{})
	err := tc.Ensure(context.Background(), []string{"a:9092", "b:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 1, ReplicationFactor: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a:9092")
	assert.Contains(t, err.Error(), "b:9092")
	assert.Equal(t, []string{"a:9092", "b:9092"}, dialer.Addresses)
}

func TestTopicCreator_ReportsCreateFailure(t *testing.T) {
	dialer := &testutils.MockKafkaDialer{ConnSpy: &testutils.MockKafkaConn{CreateErr: errors.New("not enough brokers")}}
	sleeper := &testutils.MockSleeper{}
	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, sleeper)
	err := tc.Ensure(context.Background(), []string{"broker:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 1, ReplicationFactor: 3})
	require.Error(t, err)
	assert.Zero(t, sleeper.Slept)
}

func TestTopicCreator_WaitsForPartitions(t *testing.T) {
	dialer := &testutils.MockKafkaDialer{ConnSpy: &testutils.MockKafkaConn{NotReady: true}}
	sleeper := &testutils.MockSleeper{}
	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, sleeper)
	err := tc.Ensure(context.Background(), []string{"broker:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 1, ReplicationFactor: 1})
	require.Error(t, err)
	assert.Equal(t, 1500*time.Millisecond, sleeper.Slept)
}

func TestTopicCreator_StopsWaitingOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dialer := &testutils.MockKafkaDialer{ConnSpy: &testutils.MockKafkaConn{NotReady: true}}
	sleeper := &testutils.MockSleeper{}
	tc := publisher.NewTopicCreator(zap.NewNop(), dialer, sleeper)
	err := tc.Ensure(ctx, []string{"broker:9092"}, publisher.TopicSpec{Name: "live_metrics", Partitions: 1, ReplicationFactor: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sleeper.Slept)
}
