package workflow

import (
	"math"
	"regexp"
	"testing"
	"time"

	"smarttour/pkg/model"
)

func petra() model.Tour {
	return model.Tour{ID: "1", Name: "Petra Day Tour", Price: 75, Category: model.CategoryHistorical}
}

func guests(n int) model.GuestInfo {
	return model.GuestInfo{
		NumberOfGuests: n,
		LeadGuest: model.LeadGuest{
			FirstName: "Lina",
			LastName:  "Haddad",
			Email:     "lina@example.com",
			Phone:     "+962791234567",
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNew_InitialState(t *testing.T) {
	w := New()
	s := w.State()

	if s.CurrentStep != model.StepTourSelection {
		t.Errorf("expected step 1, got %d", s.CurrentStep)
	}
	if s.SelectedTour != nil || s.GuestInfo != nil {
		t.Errorf("expected empty state, got %+v", s)
	}
	if s.BookingID != "" {
		t.Errorf("expected no booking id, got %q", s.BookingID)
	}
}

func TestAdvanceRetreat_Clamping(t *testing.T) {
	w := New()

	for i := 0; i < 10; i++ {
		w.Advance()
		if w.Step() < model.FirstStep || w.Step() > model.LastStep {
			t.Fatalf("step out of range after advance: %d", w.Step())
		}
	}
	if w.Step() != model.StepConfirmation {
		t.Fatalf("expected step 4, got %d", w.Step())
	}
	if w.Advance() {
		t.Error("advance at confirmation should report no change")
	}

	for i := 0; i < 10; i++ {
		w.Retreat()
		if w.Step() < model.FirstStep || w.Step() > model.LastStep {
			t.Fatalf("step out of range after retreat: %d", w.Step())
		}
	}
	if w.Step() != model.StepTourSelection {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	if w.Retreat() {
		t.Error("retreat at tour selection should report no change")
	}
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(w *Workflow)
		expect model.Quote
	}{
		{
			name:   "no tour selected",
			setup:  func(w *Workflow) {},
			expect: model.Quote{},
		},
		{
			name: "no guest info defaults to one guest",
			setup: func(w *Workflow) {
				w.SelectTour(petra())
			},
			expect: model.Quote{Subtotal: 75, ServiceFee: 3.75, Taxes: 12, Total: 90.75},
		},
		{
			name: "two guests",
			setup: func(w *Workflow) {
				w.SelectTour(petra())
				w.Advance()
				w.SetGuestInfo(guests(2))
			},
			expect: model.Quote{Subtotal: 150, ServiceFee: 7.5, Taxes: 24, Total: 181.5},
		},
		{
			name: "zero guests counts as one",
			setup: func(w *Workflow) {
				w.SelectTour(petra())
				w.Advance()
				w.SetGuestInfo(guests(0))
			},
			expect: model.Quote{Subtotal: 75, ServiceFee: 3.75, Taxes: 12, Total: 90.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			tt.setup(w)
			got := w.Quote()

			if !almostEqual(got.Subtotal, tt.expect.Subtotal) ||
				!almostEqual(got.ServiceFee, tt.expect.ServiceFee) ||
				!almostEqual(got.Taxes, tt.expect.Taxes) ||
				!almostEqual(got.Total, tt.expect.Total) {
				t.Errorf("got %+v, want %+v", got, tt.expect)
			}
		})
	}
}

func TestComputeQuote_CustomRates(t *testing.T) {
	w := New(WithRates(Rates{ServiceFee: 0.1, Tax: 0}))
	w.SelectTour(petra())

	q := w.Quote()
	if !almostEqual(q.Total, 82.5) {
		t.Errorf("expected total 82.5, got %v", q.Total)
	}
}

func TestSelectTour_OnlyDuringTourSelection(t *testing.T) {
	w := New()
	if !w.SelectTour(petra()) {
		t.Fatal("select tour should apply at step 1")
	}
	if w.Step() != model.StepTourSelection {
		t.Error("select tour must not advance")
	}

	w.Advance()
	other := petra()
	other.ID = "2"
	if w.SelectTour(other) {
		t.Error("select tour should be ignored outside tour selection")
	}
	if w.State().SelectedTour.ID != "1" {
		t.Error("selected tour changed outside tour selection")
	}
}

func TestSetGuestInfo_ReplacesWholesale(t *testing.T) {
	w := New()
	if w.SetGuestInfo(guests(2)) {
		t.Error("guest info should be ignored outside guest details")
	}

	w.SelectTour(petra())
	w.Advance()

	first := guests(2)
	first.SpecialRequests = "window seat"
	w.SetGuestInfo(first)
	w.SetGuestInfo(guests(4))

	got := w.State().GuestInfo
	if got.NumberOfGuests != 4 || got.SpecialRequests != "" {
		t.Errorf("expected full replacement, got %+v", got)
	}
}

func TestState_IsASnapshot(t *testing.T) {
	w := New()
	w.SelectTour(petra())
	w.Advance()
	w.SetGuestInfo(guests(2))

	s := w.State()
	s.SelectedTour.Price = 1
	s.GuestInfo.NumberOfGuests = 10

	if !almostEqual(w.Quote().Total, 181.5) {
		t.Errorf("snapshot mutation leaked into workflow: %+v", w.Quote())
	}
}

func TestReset(t *testing.T) {
	w := New()
	w.SelectTour(petra())
	w.Advance()
	w.SetGuestInfo(guests(3))
	w.Advance()
	w.Advance()

	w.Reset()
	s := w.State()

	if s.CurrentStep != model.StepTourSelection || s.SelectedTour != nil || s.GuestInfo != nil || s.BookingID != "" {
		t.Errorf("expected reset state, got %+v", s)
	}
	if w.Quote() != (model.Quote{}) {
		t.Errorf("expected zero quote after reset, got %+v", w.Quote())
	}
}

func TestBookingID_SetOnceOnConfirmation(t *testing.T) {
	now := time.UnixMilli(1719835512345)
	w := New(WithClock(func() time.Time { return now }))
	w.SelectTour(petra())

	w.Advance()
	w.Advance()
	if w.BookingID() != "" {
		t.Fatalf("booking id assigned before confirmation: %q", w.BookingID())
	}

	w.Advance()
	if w.BookingID() != "ST512345" {
		t.Fatalf("expected ST512345, got %q", w.BookingID())
	}

	now = now.Add(time.Second)
	w.Retreat()
	w.Advance()
	if w.BookingID() != "ST512345" {
		t.Errorf("booking id should be stable once assigned, got %q", w.BookingID())
	}
}

func TestFormatBookingID(t *testing.T) {
	re := regexp.MustCompile(`^ST\d{6}$`)

	tests := []struct {
		millis int64
		want   string
	}{
		{1719835512345, "ST512345"},
		{1719835000042, "ST000042"},
	}
	for _, tt := range tests {
		got := FormatBookingID(time.UnixMilli(tt.millis))
		if got != tt.want {
			t.Errorf("FormatBookingID(%d) = %q, want %q", tt.millis, got, tt.want)
		}
		if !re.MatchString(got) {
			t.Errorf("%q does not match booking id format", got)
		}
	}
}
