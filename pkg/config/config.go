package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smarttour/pkg/client"
	kafka_config "smarttour/pkg/kafka/config"
	"smarttour/pkg/logger"
)

var (
	reMongoScheme  = regexp.MustCompile(`^mongodb(\+srv)?://`)
	reMongoSecrets = regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
)

type Config struct {
	ServiceName string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ServiceFeeRate float64
	TaxRate        float64
	SessionTTL     time.Duration
	SessionSealKey string

	KafkaEnabled          bool
	BookingEventsTopic    string
	BookingEventsDLQTopic string
	WishlistConsumerGroup string
	Kafka                 *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client
}

type Option func(*defaults)

type defaults struct {
	port string
}

// WithDefaultPort changes the port used when PORT is unset.
func WithDefaultPort(port string) Option {
	return func(d *defaults) { d.port = port }
}

// Load reads the environment, validates it and exits on invalid configuration.
func Load(serviceName string, opts ...Option) *Config {
	cfg := FromEnv(serviceName, opts...)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	if cfg.SessionSealKey == "" {
		cfg.SessionSealKey = generateSealKey()
		cfg.Log.Warn("SESSION_SEAL_KEY not set, using an ephemeral key; session tokens will not survive a restart")
	}
	if cfg.KafkaEnabled {
		kcfg, err := kafka_config.Load()
		if err != nil {
			cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
		}
		cfg.Kafka = kcfg
		kcfg.LogConfiguration(cfg.Log.Info)
	}

	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from the environment without validating it.
func FromEnv(serviceName string, opts ...Option) *Config {
	d := &defaults{port: DefaultPort}
	for _, opt := range opts {
		opt(d)
	}

	return &Config{
		ServiceName: serviceName,

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, d.port),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ServiceFeeRate: getEnvFloat(EnvServiceFeeRate, DefaultServiceFeeRate),
		TaxRate:        getEnvFloat(EnvTaxRate, DefaultTaxRate),
		SessionTTL:     getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionSealKey: getEnvStr(EnvSessionSealKey, ""),

		KafkaEnabled:          getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		BookingEventsTopic:    getEnvStr(EnvKafkaBookingEventsTopic, DefaultBookingEventsTopic),
		BookingEventsDLQTopic: getEnvStr(EnvKafkaBookingEventsDLQTopic, DefaultBookingEventsDLQTopic),
		WishlistConsumerGroup: getEnvStr(EnvKafkaWishlistConsumerGroup, DefaultWishlistConsumerGroup),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if !reMongoScheme.MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"SessionTTL", cfg.SessionTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", p.name, p.value))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.ServiceFeeRate < 0 || cfg.ServiceFeeRate > 1 {
		errors = append(errors, fmt.Sprintf("ServiceFeeRate must be between 0 and 1, got: %g", cfg.ServiceFeeRate))
	}
	if cfg.TaxRate < 0 || cfg.TaxRate > 1 {
		errors = append(errors, fmt.Sprintf("TaxRate must be between 0 and 1, got: %g", cfg.TaxRate))
	}

	if cfg.SessionSealKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.SessionSealKey)
		if err != nil {
			errors = append(errors, "SessionSealKey must be standard base64")
		} else if n := len(key); n != 16 && n != 24 && n != 32 {
			errors = append(errors, fmt.Sprintf("SessionSealKey must decode to 16, 24 or 32 bytes, got: %d", n))
		}
	}

	if cfg.KafkaEnabled {
		if strings.TrimSpace(cfg.BookingEventsTopic) == "" {
			errors = append(errors, "BookingEventsTopic cannot be empty when Kafka is enabled")
		}
		if strings.TrimSpace(cfg.WishlistConsumerGroup) == "" {
			errors = append(errors, "WishlistConsumerGroup cannot be empty when Kafka is enabled")
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"service_fee_rate", cfg.ServiceFeeRate,
		"tax_rate", cfg.TaxRate,
		"session_ttl", cfg.SessionTTL,
		"session_seal_key_set", cfg.SessionSealKey != "",
		"kafka_enabled", cfg.KafkaEnabled,
		"booking_events_topic", cfg.BookingEventsTopic,
		"wishlist_consumer_group", cfg.WishlistConsumerGroup,
	)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}

func redactMongoURI(uri string) string {
	return reMongoSecrets.ReplaceAllString(uri, "${1}***:***@")
}

func generateSealKey() string {
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return base64.StdEncoding.EncodeToString(key)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		return MinPaginationLimit
	}
	return min(limit, DefaultPaginationLimit)
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
