package kafka_config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	compressions = []string{"none", "gzip", "snappy", "lz4", "zstd"}
	acks         = []int{-1, 0, 1}
)

type Config struct {
	Brokers  []string
	ClientID string

	Producer ProducerConfig
	Consumer ConsumerConfig
}

type ProducerConfig struct {
	MaxAttempts  int
	BatchTimeout time.Duration
	RequiredAcks int // -1 all replicas, 0 none, 1 leader
	Compression  string
	Async        bool
}

type ConsumerConfig struct {
	StartOffset       int64 // -1 newest, -2 oldest
	MinBytes          int
	MaxBytes          int
	MaxWait           time.Duration
	CommitInterval    time.Duration
	HeartbeatInterval time.Duration
	SessionTimeout    time.Duration
	RebalanceTimeout  time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
}

// Load reads the KAFKA_* environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Brokers:  ParseBrokers(envStr(EnvKafkaBrokers, DefaultBrokers)),
		ClientID: envStr(EnvKafkaClientID, DefaultClientID),
		Producer: ProducerConfig{
			MaxAttempts:  envInt(EnvKafkaProducerMaxAttempts, DefaultProducerMaxAttempts),
			BatchTimeout: envDuration(EnvKafkaProducerBatchTimeout, DefaultProducerBatchTimeout),
			RequiredAcks: envInt(EnvKafkaProducerRequiredAcks, DefaultProducerRequiredAcks),
			Compression:  strings.ToLower(envStr(EnvKafkaProducerCompression, DefaultProducerCompression)),
			Async:        envBool(EnvKafkaProducerAsync, DefaultProducerAsync),
		},
		Consumer: ConsumerConfig{
			StartOffset:       int64(envInt(EnvKafkaConsumerStartOffset, DefaultConsumerStartOffset)),
			MinBytes:          envInt(EnvKafkaConsumerMinBytes, DefaultConsumerMinBytes),
			MaxBytes:          envInt(EnvKafkaConsumerMaxBytes, DefaultConsumerMaxBytes),
			MaxWait:           envDuration(EnvKafkaConsumerMaxWait, DefaultConsumerMaxWait),
			CommitInterval:    envDuration(EnvKafkaConsumerCommitInterval, DefaultConsumerCommitInterval),
			HeartbeatInterval: envDuration(EnvKafkaConsumerHeartbeatInterval, DefaultConsumerHeartbeatInterval),
			SessionTimeout:    envDuration(EnvKafkaConsumerSessionTimeout, DefaultConsumerSessionTimeout),
			RebalanceTimeout:  envDuration(EnvKafkaConsumerRebalanceTimeout, DefaultConsumerRebalanceTimeout),
			MaxRetries:        envInt(EnvKafkaConsumerMaxRetries, DefaultConsumerMaxRetries),
			RetryBackoff:      envDuration(EnvKafkaConsumerRetryBackoff, DefaultConsumerRetryBackoff),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseBrokers splits a comma separated broker list and drops blanks.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (cfg *Config) Validate() error {
	var problems []string

	if len(cfg.Brokers) == 0 {
		problems = append(problems, "at least one broker is required in KAFKA_BROKERS")
	}
	if !slices.Contains(compressions, cfg.Producer.Compression) {
		problems = append(problems, fmt.Sprintf("producer compression must be one of %v, got: %q", compressions, cfg.Producer.Compression))
	}
	if !slices.Contains(acks, cfg.Producer.RequiredAcks) {
		problems = append(problems, fmt.Sprintf("producer required acks must be one of %v, got: %d", acks, cfg.Producer.RequiredAcks))
	}
	if cfg.Consumer.StartOffset < -2 {
		problems = append(problems, fmt.Sprintf("consumer start offset must be -1, -2 or a concrete offset, got: %d", cfg.Consumer.StartOffset))
	}
	if cfg.Consumer.MinBytes > cfg.Consumer.MaxBytes {
		problems = append(problems, fmt.Sprintf("consumer min bytes (%d) exceeds max bytes (%d)", cfg.Consumer.MinBytes, cfg.Consumer.MaxBytes))
	}
	if cfg.Consumer.MaxRetries < 0 {
		problems = append(problems, fmt.Sprintf("consumer max retries cannot be negative, got: %d", cfg.Consumer.MaxRetries))
	}

	counts := map[string]int{
		"producer max attempts": cfg.Producer.MaxAttempts,
		"consumer min bytes":    cfg.Consumer.MinBytes,
		"consumer max bytes":    cfg.Consumer.MaxBytes,
	}
	for _, name := range sortedKeys(counts) {
		if counts[name] <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %d", name, counts[name]))
		}
	}

	durations := map[string]time.Duration{
		"producer batch timeout":      cfg.Producer.BatchTimeout,
		"consumer max wait":           cfg.Consumer.MaxWait,
		"consumer commit interval":    cfg.Consumer.CommitInterval,
		"consumer heartbeat interval": cfg.Consumer.HeartbeatInterval,
		"consumer session timeout":    cfg.Consumer.SessionTimeout,
		"consumer rebalance timeout":  cfg.Consumer.RebalanceTimeout,
		"consumer retry backoff":      cfg.Consumer.RetryBackoff,
	}
	for _, name := range sortedKeys(durations) {
		if durations[name] <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, durations[name]))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Kafka configuration validation failed:\n")
	for i, p := range problems {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	return fmt.Errorf("%s", b.String())
}

// LogConfiguration reports the effective settings through an slog-style function.
func (cfg *Config) LogConfiguration(logFunc func(msg string, args ...any)) {
	if logFunc == nil {
		return
	}
	logFunc("Kafka configuration loaded",
		"brokers", cfg.Brokers,
		"client_id", cfg.ClientID,
		"producer", map[string]any{
			"max_attempts":  cfg.Producer.MaxAttempts,
			"batch_timeout": cfg.Producer.BatchTimeout.String(),
			"required_acks": cfg.Producer.RequiredAcks,
			"compression":   cfg.Producer.Compression,
			"async":         cfg.Producer.Async,
		},
		"consumer", map[string]any{
			"start_offset":    cfg.Consumer.StartOffset,
			"max_wait":        cfg.Consumer.MaxWait.String(),
			"commit_interval": cfg.Consumer.CommitInterval.String(),
			"max_retries":     cfg.Consumer.MaxRetries,
			"retry_backoff":   cfg.Consumer.RetryBackoff.String(),
		},
	)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func envStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(envStr(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(envStr(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(envStr(key, ""))
	if err != nil {
		return fallback
	}
	return d
}
