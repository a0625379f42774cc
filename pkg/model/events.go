package model

import "time"

const (
	EventBookingConfirmed      = "booking.confirmed"
	BookingEventsSchemaVersion = "1"
)

type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id,omitempty"`
	TourID      string    `json:"tour_id"`
	TourName    string    `json:"tour_name"`
	Guests      int       `json:"guests"`
	Total       float64   `json:"total"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
