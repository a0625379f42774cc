// Package events consumes booking events that affect wishlists.
package events

import (
	"context"

	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/kafka"
	"smarttour/pkg/logger"
	"smarttour/pkg/model"
)

type fulfiller interface {
	FulfillTour(ctx context.Context, userID, tourID string) (int, error)
}

// NewBookingConfirmedHandler removes a booked tour from the user's wishlist.
// Other event types are acknowledged and skipped.
func NewBookingConfirmedHandler(wishlists fulfiller, log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		if eventType := msg.GetEventType(); eventType != model.EventBookingConfirmed {
			log.Debug("Skipping booking event", "event_type", eventType, "event_id", msg.GetEventID())
			return nil
		}

		var event model.BookingConfirmedEvent
		if err := msg.DecodeValue(&event); err != nil {
			return kafka.NewPermanentError("invalid booking.confirmed payload", err)
		}
		if event.UserID == "" {
			return nil
		}

		if _, err := wishlists.FulfillTour(ctx, event.UserID, event.TourID); err != nil {
			if apperrors.HasCode(err, apperrors.CodeInvalidInput) {
				log.Warn("Skipping booking event for a user id wishlists cannot hold",
					"event_id", msg.GetEventID(), "user_id", event.UserID, "error", err)
				return nil
			}
			return kafka.NewTransientError("failed to update wishlist", err)
		}
		return nil
	}
}
