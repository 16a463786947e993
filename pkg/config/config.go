package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Ticker    TickerConfig    `mapstructure:"ticker"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Processor ProcessorConfig `mapstructure:"processor"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
}

type AppConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"` // e.g., "local", "prod"
}

type TickerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Seed     int64         `mapstructure:"seed"`   // 0 = seed from clock
	Source   string        `mapstructure:"source"` // identifies this shell on the wire
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty = stderr only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	Console    bool   `mapstructure:"console"` // human-readable encoder
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	Brokers           []string `mapstructure:"brokers"`
	Topic             string   `mapstructure:"topic"`
	GroupID           string   `mapstructure:"group_id"`
	Partitions        int      `mapstructure:"partitions"` // used only when the dashboard creates the topic
	ReplicationFactor int      `mapstructure:"replication_factor"`
}

type ProcessorConfig struct {
	NumWorkers int `mapstructure:"num_workers"`
}

const (
	FeedLocal = "local"
	FeedRedis = "redis"
)

type GatewayConfig struct {
	Feed    string  `mapstructure:"feed"`    // "local" or "redis"
	WSRate  float64 `mapstructure:"ws_rate"` // upgrades per second per IP
	WSBurst int     `mapstructure:"ws_burst"`
}

// LoadConfig reads configuration from .env file, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Load .env into the process environment so APP_PORT etc. behave like real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	setDefaults(v)

	// "app.port" -> "APP_PORT"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only maps flat env vars onto nested keys it has been told about
	bindEnv(v, "app.port", "app.env")
	bindEnv(v, "ticker.interval", "ticker.seed", "ticker.source")
	bindEnv(v, "logger.level", "logger.file", "logger.max_size_mb", "logger.max_backups",
		"logger.max_age_days", "logger.compress", "logger.console")
	bindEnv(v, "redis.addr", "redis.password", "redis.db")
	bindEnv(v, "kafka.enabled", "kafka.brokers", "kafka.topic", "kafka.group_id",
		"kafka.partitions", "kafka.replication_factor")
	bindEnv(v, "processor.num_workers")
	bindEnv(v, "gateway.feed", "gateway.ws_rate", "gateway.ws_burst")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.env", "local")

	v.SetDefault("ticker.interval", 3*time.Second)
	v.SetDefault("ticker.seed", 0)
	v.SetDefault("ticker.source", "uptip-shell")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.console", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "live_metrics")
	v.SetDefault("kafka.group_id", "uptip-processor-group")
	v.SetDefault("kafka.partitions", 1)
	v.SetDefault("kafka.replication_factor", 1)

	v.SetDefault("processor.num_workers", 4)

	v.SetDefault("gateway.feed", FeedLocal)
	v.SetDefault("gateway.ws_rate", 5.0)
	v.SetDefault("gateway.ws_burst", 10)
}

// Validate checks the cross-field rules viper cannot express.
func (c *Config) Validate() error {
	if c.Ticker.Interval <= 0 {
		return fmt.Errorf("ticker interval must be positive, got %s", c.Ticker.Interval)
	}
	if c.Processor.NumWorkers <= 0 {
		return fmt.Errorf("processor workers must be positive, got %d", c.Processor.NumWorkers)
	}
	if c.Gateway.Feed != FeedLocal && c.Gateway.Feed != FeedRedis {
		return fmt.Errorf("gateway feed must be %q or %q, got %q", FeedLocal, FeedRedis, c.Gateway.Feed)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers cannot be empty")
	}
	if c.Kafka.Enabled && (c.Kafka.Partitions <= 0 || c.Kafka.ReplicationFactor <= 0) {
		return fmt.Errorf("kafka partitions and replication factor must be positive, got %d and %d",
			c.Kafka.Partitions, c.Kafka.ReplicationFactor)
	}
	return nil
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
