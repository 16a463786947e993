package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-shewale/uptip/pkg/config"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.App.Port)
	assert.Equal(t, 3*time.Second, cfg.Ticker.Interval)
	assert.Equal(t, "live_metrics", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 1, cfg.Kafka.Partitions)
	assert.Equal(t, 1, cfg.Kafka.ReplicationFactor)
	assert.Equal(t, config.FeedLocal, cfg.Gateway.Feed)
	assert.Equal(t, 4, cfg.Processor.NumWorkers)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", ":9999")
	t.Setenv("TICKER_INTERVAL", "250ms")
	t.Setenv("GATEWAY_FEED", "redis")
	t.Setenv("PROCESSOR_NUM_WORKERS", "2")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.App.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Ticker.Interval)
	assert.Equal(t, config.FeedRedis, cfg.Gateway.Feed)
	assert.Equal(t, 2, cfg.Processor.NumWorkers)
}

func TestLoadConfig_RejectsBadFeed(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GATEWAY_FEED", "carrier-pigeon")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := config.Config{
		Ticker:    config.TickerConfig{Interval: time.Second},
		Processor: config.ProcessorConfig{NumWorkers: 1},
		Gateway:   config.GatewayConfig{Feed: config.FeedLocal},
	}
	require.NoError(t, base.Validate())

	noInterval := base
	noInterval.Ticker.Interval = 0
	assert.Error(t, noInterval.Validate())

	kafkaNoBrokers := base
	kafkaNoBrokers.Kafka.Enabled = true
	assert.Error(t, kafkaNoBrokers.Validate())

	kafkaNoPartitions := base
	kafkaNoPartitions.Kafka = config.KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}, ReplicationFactor: 1}
	assert.Error(t, kafkaNoPartitions.Validate())
	kafkaNoPartitions.Kafka.Partitions = 4
	assert.NoError(t, kafkaNoPartitions.Validate())
}

func TestNewLogger(t *testing.T) {
	logger, err := config.NewLogger(config.LoggerConfig{
		Level:     "debug",
		File:      filepath.Join(t.TempDir(), "uptip.log"),
		MaxSizeMB: 1,
	})
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	_, err = config.NewLogger(config.LoggerConfig{Level: "loud"})
	assert.Error(t, err)
}
