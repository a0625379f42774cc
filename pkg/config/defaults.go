package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "smarttour"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
	MinPaginationLimit     = 10

	DefaultServiceFeeRate = 0.05
	DefaultTaxRate        = 0.16
	DefaultSessionTTL     = 2 * time.Hour

	DefaultKafkaEnabled          = false
	DefaultBookingEventsTopic    = "smarttour.booking-events"
	DefaultBookingEventsDLQTopic = "smarttour.booking-events.dlq"
	DefaultWishlistConsumerGroup = "smarttour-wishlist"
)
