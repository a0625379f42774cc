package kafka_config

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseBrokers(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"localhost:9092", []string{"localhost:9092"}},
		{" kafka-1:9092 , kafka-2:9092 ,", []string{"kafka-1:9092", "kafka-2:9092"}},
		{" , ", nil},
	}

	for _, tt := range tests {
		if got := ParseBrokers(tt.raw); !slices.Equal(got, tt.want) {
			t.Errorf("ParseBrokers(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092,kafka-2:9092")
	t.Setenv(EnvKafkaConsumerMaxRetries, "5")
	t.Setenv(EnvKafkaConsumerRetryBackoff, "2s")
	t.Setenv(EnvKafkaProducerBatchTimeout, "50ms")
	t.Setenv(EnvKafkaProducerCompression, "GZIP")
	t.Setenv(EnvKafkaProducerMaxAttempts, "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Brokers) != 2 {
		t.Errorf("brokers = %v", cfg.Brokers)
	}
	if cfg.ClientID != DefaultClientID {
		t.Errorf("ClientID = %q", cfg.ClientID)
	}
	if cfg.Consumer.MaxRetries != 5 || cfg.Consumer.RetryBackoff != 2*time.Second {
		t.Errorf("consumer retries = %d backoff = %s", cfg.Consumer.MaxRetries, cfg.Consumer.RetryBackoff)
	}
	if cfg.Producer.BatchTimeout != 50*time.Millisecond {
		t.Errorf("BatchTimeout = %s", cfg.Producer.BatchTimeout)
	}
	if cfg.Producer.Compression != "gzip" {
		t.Errorf("Compression = %q", cfg.Producer.Compression)
	}
	if cfg.Producer.MaxAttempts != DefaultProducerMaxAttempts {
		t.Errorf("unparseable value should fall back to default, got %d", cfg.Producer.MaxAttempts)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, " , ")
	t.Setenv(EnvKafkaProducerCompression, "brotli")
	t.Setenv(EnvKafkaProducerRequiredAcks, "2")
	t.Setenv(EnvKafkaConsumerRetryBackoff, "-1s")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"broker is required", "compression", "required acks", "retry backoff"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidate_MinAboveMaxBytes(t *testing.T) {
	t.Setenv(EnvKafkaConsumerMinBytes, "2048")
	t.Setenv(EnvKafkaConsumerMaxBytes, "1024")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "exceeds max bytes") {
		t.Fatalf("expected min/max error, got %v", err)
	}
}
