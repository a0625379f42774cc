// Package events publishes booking lifecycle events to Kafka.
package events

import (
	"context"
	"fmt"

	"smarttour/pkg/kafka"
	"smarttour/pkg/logger"
	"smarttour/pkg/middleware"
	"smarttour/pkg/model"
)

const Source = "bookings"

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type KafkaPublisher struct {
	producer messagePublisher
	log      *logger.Logger
}

func NewKafkaPublisher(producer messagePublisher, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

// PublishBookingConfirmed keys the event by user so a user's events stay ordered,
// falling back to the session for anonymous bookings.
func (p *KafkaPublisher) PublishBookingConfirmed(ctx context.Context, event model.BookingConfirmedEvent) error {
	key := event.UserID
	if key == "" {
		key = event.SessionID
	}

	msg, err := kafka.NewMessage().
		WithKey(key).
		WithValue(event).
		WithEventType(model.EventBookingConfirmed).
		WithSchemaVersion(model.BookingEventsSchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestIDFrom(ctx)).
		WithTimestamp(event.ConfirmedAt).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", model.EventBookingConfirmed, err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", model.EventBookingConfirmed, err)
	}
	return nil
}

// NoopPublisher drops events. Used when Kafka is disabled.
type NoopPublisher struct {
	log *logger.Logger
}

func NewNoopPublisher(log *logger.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) PublishBookingConfirmed(ctx context.Context, event model.BookingConfirmedEvent) error {
	p.log.Debug("Kafka disabled, dropping booking event",
		"event_type", model.EventBookingConfirmed,
		"booking_id", event.BookingID,
	)
	return nil
}
