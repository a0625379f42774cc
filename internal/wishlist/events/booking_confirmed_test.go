package events

import (
	"context"
	"errors"
	"testing"

	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/kafka"
	"smarttour/pkg/logger"
	"smarttour/pkg/model"
)

type fakeFulfiller struct {
	calls [][2]string
	err   error
}

func (f *fakeFulfiller) FulfillTour(ctx context.Context, userID, tourID string) (int, error) {
	f.calls = append(f.calls, [2]string{userID, tourID})
	return 1, f.err
}

func message(t *testing.T, eventType string, value any) kafka.Message {
	t.Helper()
	msg, err := kafka.NewMessage().WithKey("k").WithValue(value).WithEventType(eventType).Build()
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestBookingConfirmedHandler(t *testing.T) {
	confirmed := model.BookingConfirmedEvent{BookingID: "ST000001", UserID: "u1", TourID: "4"}

	tests := []struct {
		name      string
		msg       func(t *testing.T) kafka.Message
		svcErr    error
		wantCalls int
		wantType  kafka.ErrorType
	}{
		{
			name:      "removes booked tour",
			msg:       func(t *testing.T) kafka.Message { return message(t, model.EventBookingConfirmed, confirmed) },
			wantCalls: 1,
		},
		{
			name: "other event types are skipped",
			msg:  func(t *testing.T) kafka.Message { return message(t, "booking.cancelled", confirmed) },
		},
		{
			name: "anonymous booking is skipped",
			msg: func(t *testing.T) kafka.Message {
				return message(t, model.EventBookingConfirmed, model.BookingConfirmedEvent{TourID: "4"})
			},
		},
		{
			name: "malformed payload is permanent",
			msg: func(t *testing.T) kafka.Message {
				msg := message(t, model.EventBookingConfirmed, confirmed)
				msg.Value = []byte("{not json")
				return msg
			},
			wantType: kafka.ErrorTypePermanent,
		},
		{
			name:      "storage failure is transient",
			msg:       func(t *testing.T) kafka.Message { return message(t, model.EventBookingConfirmed, confirmed) },
			svcErr:    errors.New("write conflict"),
			wantCalls: 1,
			wantType:  kafka.ErrorTypeTransient,
		},
		{
			name:      "user id wishlists cannot hold is skipped",
			msg:       func(t *testing.T) kafka.Message { return message(t, model.EventBookingConfirmed, confirmed) },
			svcErr:    apperrors.InvalidInput("User ID may only contain letters, digits, '-' and '_'"),
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeFulfiller{err: tt.svcErr}
			handler := NewBookingConfirmedHandler(svc, logger.Discard())

			err := handler(context.Background(), tt.msg(t))
			if len(svc.calls) != tt.wantCalls {
				t.Errorf("calls = %v, want %d", svc.calls, tt.wantCalls)
			}
			if tt.wantCalls == 1 && svc.calls[0] != [2]string{"u1", "4"} {
				t.Errorf("called with %v", svc.calls[0])
			}
			if tt.wantType == kafka.ErrorTypeUnknown {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if kafka.ClassifyError(err) != tt.wantType {
				t.Errorf("error %v classified as %v, want %v", err, kafka.ClassifyError(err), tt.wantType)
			}
		})
	}
}
