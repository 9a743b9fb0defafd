package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	PubSub    PubSubConfig
	Push      PushConfig
	Cache     CacheConfig
	FanOut    FanOutConfig
	Alarm     AlarmConfig
	Telemetry TelemetryConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
	// SubscriberGroup names the queue group (NATS) or subscription suffix
	// (Pub/Sub) shared by all instances consuming change events.
	SubscriberGroup string
}

type PushConfig struct {
	ProjectID       string
	CredentialsFile string
	DryRun          bool
}

type CacheConfig struct {
	RedisURL    string
	EndpointTTL time.Duration
}

type FanOutConfig struct {
	AggregatorConcurrency int
}

type AlarmConfig struct {
	IdleBypass bool
	Location   *time.Location
}

type TelemetryConfig struct {
	// SamplingRate is the fraction of root traces sampled, in [0, 1].
	SamplingRate   float64
	ExportDisabled bool
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	dryRun, err := strconv.ParseBool(getEnv("FCM_DRY_RUN", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid FCM_DRY_RUN: %w", err)
	}

	endpointTTL, err := time.ParseDuration(getEnv("ENDPOINT_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENDPOINT_CACHE_TTL: %w", err)
	}

	concurrency, err := strconv.Atoi(getEnv("AGGREGATOR_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid AGGREGATOR_CONCURRENCY: %w", err)
	}

	if concurrency < 1 {
		return nil, fmt.Errorf("invalid AGGREGATOR_CONCURRENCY: must be at least 1, got %d", concurrency)
	}

	idleBypass, err := strconv.ParseBool(getEnv("ALARM_IDLE_BYPASS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALARM_IDLE_BYPASS: %w", err)
	}

	location, err := time.LoadLocation(getEnv("ALARM_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALARM_TIMEZONE: %w", err)
	}

	samplingRate, err := strconv.ParseFloat(getEnv("TRACE_SAMPLING_RATE", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TRACE_SAMPLING_RATE: %w", err)
	}

	if samplingRate < 0 || samplingRate > 1 {
		return nil, fmt.Errorf("invalid TRACE_SAMPLING_RATE: must be within [0, 1], got %v", samplingRate)
	}

	exportDisabled, err := strconv.ParseBool(getEnv("OTEL_EXPORTER_DISABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTEL_EXPORTER_DISABLED: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			SlowThreshold:   slowThreshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		PubSub: PubSubConfig{
			NatsURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
			SubscriberGroup: getEnv("PUBSUB_SUBSCRIBER_GROUP", "calendar-notify"),
		},
		Push: PushConfig{
			ProjectID:       os.Getenv("FCM_PROJECT_ID"),
			CredentialsFile: os.Getenv("FCM_CREDENTIALS_FILE"),
			DryRun:          dryRun,
		},
		Cache: CacheConfig{
			RedisURL:    os.Getenv("REDIS_URL"),
			EndpointTTL: endpointTTL,
		},
		FanOut: FanOutConfig{
			AggregatorConcurrency: concurrency,
		},
		Alarm: AlarmConfig{
			IdleBypass: idleBypass,
			Location:   location,
		},
		Telemetry: TelemetryConfig{
			SamplingRate:   samplingRate,
			ExportDisabled: exportDisabled,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
