// Package workflow implements the four step booking wizard: tour selection,
// guest details, payment and confirmation.
//
// A Workflow is a plain synchronous value. It never returns errors; calls that
// do not apply to the current step are ignored and report false. Callers that
// need stricter behavior (the HTTP layer) check preconditions before calling.
// A Workflow is not safe for concurrent use.
package workflow

import (
	"fmt"
	"time"

	"smarttour/pkg/model"
)

const BookingIDPrefix = "ST"

type Workflow struct {
	step      model.Step
	tour      *model.Tour
	guests    *model.GuestInfo
	bookingID string

	rates Rates
	now   func() time.Time
}

type Option func(*Workflow)

func WithRates(r Rates) Option {
	return func(w *Workflow) { w.rates = r }
}

func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

func New(opts ...Option) *Workflow {
	w := &Workflow{
		step:  model.FirstStep,
		rates: DefaultRates(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workflow) Step() model.Step {
	return w.step
}

// SelectTour records the chosen tour. Only applies during tour selection and does not advance.
func (w *Workflow) SelectTour(tour model.Tour) bool {
	if w.step != model.StepTourSelection {
		return false
	}
	t := tour
	w.tour = &t
	return true
}

// SetGuestInfo replaces the guest details wholesale. Only applies during guest details.
func (w *Workflow) SetGuestInfo(info model.GuestInfo) bool {
	if w.step != model.StepGuestDetails {
		return false
	}
	w.guests = info.Clone()
	return true
}

// Advance moves one step forward, stopping at confirmation.
func (w *Workflow) Advance() bool {
	if w.step >= model.LastStep {
		return false
	}
	w.step++
	if w.step == model.StepConfirmation && w.bookingID == "" {
		w.bookingID = FormatBookingID(w.now())
	}
	return true
}

// Retreat moves one step back, stopping at tour selection.
func (w *Workflow) Retreat() bool {
	if w.step <= model.FirstStep {
		return false
	}
	w.step--
	return true
}

func (w *Workflow) Reset() {
	w.step = model.FirstStep
	w.tour = nil
	w.guests = nil
	w.bookingID = ""
}

// Quote is zero until a tour is selected.
func (w *Workflow) Quote() model.Quote {
	if w.tour == nil {
		return model.Quote{}
	}
	guests := 1
	if w.guests != nil {
		guests = w.guests.NumberOfGuests
	}
	return CalculateQuote(w.tour.Price, guests, w.rates)
}

// BookingID is empty until the workflow first reaches confirmation.
func (w *Workflow) BookingID() string {
	return w.bookingID
}

func (w *Workflow) State() model.BookingState {
	state := model.BookingState{
		CurrentStep: w.step,
		StepName:    w.step.String(),
		GuestInfo:   w.guests.Clone(),
		BookingID:   w.bookingID,
	}
	if w.tour != nil {
		t := *w.tour
		state.SelectedTour = &t
	}
	return state
}

// FormatBookingID builds the display reference: the prefix plus the last six digits
// of the epoch milliseconds. It is a label, not a unique key.
func FormatBookingID(t time.Time) string {
	return fmt.Sprintf("%s%06d", BookingIDPrefix, t.UnixMilli()%1_000_000)
}
