package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvServiceFeeRate = "SERVICE_FEE_RATE"
	EnvTaxRate        = "TAX_RATE"
	EnvSessionTTL     = "SESSION_TTL"
	EnvSessionSealKey = "SESSION_SEAL_KEY"

	EnvKafkaEnabled               = "KAFKA_ENABLED"
	EnvKafkaBookingEventsTopic    = "KAFKA_BOOKING_EVENTS_TOPIC"
	EnvKafkaBookingEventsDLQTopic = "KAFKA_BOOKING_EVENTS_DLQ_TOPIC"
	EnvKafkaWishlistConsumerGroup = "KAFKA_WISHLIST_CONSUMER_GROUP"
)
