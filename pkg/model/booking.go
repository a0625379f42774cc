package model

import (
	"slices"
	"time"
)

type Step int

const (
	StepTourSelection Step = iota + 1
	StepGuestDetails
	StepPayment
	StepConfirmation
)

const (
	FirstStep = StepTourSelection
	LastStep  = StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepTourSelection:
		return "tour_selection"
	case StepGuestDetails:
		return "guest_details"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

type LeadGuest struct {
	FirstName   string `json:"first_name" bson:"first_name" validate:"required,max=60"`
	LastName    string `json:"last_name" bson:"last_name" validate:"required,max=60"`
	Email       string `json:"email" bson:"email" validate:"required,email"`
	Phone       string `json:"phone" bson:"phone" validate:"required,guest_phone"`
	Nationality string `json:"nationality,omitempty" bson:"nationality,omitempty" validate:"omitempty,max=60"`
}

type GuestInfo struct {
	NumberOfGuests      int       `json:"number_of_guests" bson:"number_of_guests" validate:"min=1,max=50"`
	LeadGuest           LeadGuest `json:"lead_guest" bson:"lead_guest"`
	DietaryRestrictions []string  `json:"dietary_restrictions,omitempty" bson:"dietary_restrictions,omitempty" validate:"omitempty,unique,dive,max=40"`
	EmergencyContact    string    `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty" validate:"omitempty,max=200"`
	SpecialRequests     string    `json:"special_requests,omitempty" bson:"special_requests,omitempty" validate:"omitempty,max=1000"`
	AccessibilityNeeds  string    `json:"accessibility_needs,omitempty" bson:"accessibility_needs,omitempty" validate:"omitempty,max=1000"`
}

// ToggleDietaryRestriction adds or removes a restriction, keeping the set free of duplicates.
func (g *GuestInfo) ToggleDietaryRestriction(restriction string, checked bool) {
	idx := slices.Index(g.DietaryRestrictions, restriction)
	switch {
	case checked && idx < 0:
		g.DietaryRestrictions = append(g.DietaryRestrictions, restriction)
	case !checked && idx >= 0:
		g.DietaryRestrictions = slices.Delete(g.DietaryRestrictions, idx, idx+1)
	}
}

func (g *GuestInfo) Clone() *GuestInfo {
	if g == nil {
		return nil
	}
	c := *g
	c.DietaryRestrictions = slices.Clone(g.DietaryRestrictions)
	return &c
}

type Quote struct {
	Subtotal   float64 `json:"subtotal" bson:"subtotal"`
	ServiceFee float64 `json:"service_fee" bson:"service_fee"`
	Taxes      float64 `json:"taxes" bson:"taxes"`
	Total      float64 `json:"total" bson:"total"`
}

type BookingState struct {
	CurrentStep  Step       `json:"current_step"`
	StepName     string     `json:"step_name"`
	SelectedTour *Tour      `json:"selected_tour"`
	GuestInfo    *GuestInfo `json:"guest_info"`
	BookingID    string     `json:"booking_id,omitempty"`
}

const (
	BookingStatusConfirmed = "confirmed"
)

// BookingRecord is the persisted snapshot of a session that reached confirmation.
type BookingRecord struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	BookingID string    `json:"booking_id" bson:"booking_id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	UserID    string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Tour      Tour      `json:"tour" bson:"tour"`
	GuestInfo GuestInfo `json:"guest_info" bson:"guest_info"`
	Quote     Quote     `json:"quote" bson:"quote"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BookingSession is what the API returns for every session operation.
type BookingSession struct {
	Token     string       `json:"token"`
	State     BookingState `json:"state"`
	Quote     Quote        `json:"quote"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type SelectTourRequest struct {
	TourID string `json:"tour_id" validate:"required"`
}

type StartSessionRequest struct {
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=64"`
}
