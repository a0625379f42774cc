package kafka_middleware

import (
	"context"
	"time"

	"smarttour/pkg/kafka"
	"smarttour/pkg/logger"
)

func messageAttrs(msg kafka.Message) []any {
	return []any{
		"topic", msg.Topic,
		"key", msg.Key,
		"event_id", msg.GetEventID(),
		"event_type", msg.GetEventType(),
		"correlation_id", msg.GetCorrelationID(),
	}
}

func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		l := log.With(messageAttrs(msg)...)

		err := next(ctx, msg)

		if err != nil {
			l.Error("Failed to publish Kafka message", "duration", time.Since(start), "error", err)
			return err
		}
		l.Debug("Published Kafka message", "duration", time.Since(start))
		return nil
	}
}

func LoggingConsumerMiddleware(log *logger.Logger) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		l := log.With(messageAttrs(msg)...).With("partition", msg.Partition, "offset", msg.Offset)

		err := next(ctx, msg)

		if err != nil {
			l.Warn("Failed to process Kafka message", "duration", time.Since(start), "retry_count", msg.GetRetryCount(), "error", err)
			return err
		}
		l.Debug("Processed Kafka message", "duration", time.Since(start))
		return nil
	}
}
