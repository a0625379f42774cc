package service

import (
	"context"
	"errors"
	"net/http"

	bookingserrors "smarttour/internal/bookings/errors"
	"smarttour/internal/bookings/repository"
	"smarttour/internal/bookings/validator"
	"smarttour/internal/bookings/workflow"
	"smarttour/pkg/config"
	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/locale"
	"smarttour/pkg/model"
	"smarttour/pkg/sanitizer"
	"smarttour/pkg/sealer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventPublisher announces bookings that reached confirmation.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event model.BookingConfirmedEvent) error
}

type SessionService interface {
	Start(ctx context.Context, req *model.StartSessionRequest) (*model.BookingSession, error)
	Get(ctx context.Context, token string) (*model.BookingSession, error)
	SelectTour(ctx context.Context, token string, req *model.SelectTourRequest) (*model.BookingSession, error)
	SetGuestInfo(ctx context.Context, token string, info *model.GuestInfo) (*model.BookingSession, error)
	Advance(ctx context.Context, token string) (*model.BookingSession, error)
	Retreat(ctx context.Context, token string) (*model.BookingSession, error)
	Reset(ctx context.Context, token string) (*model.BookingSession, error)
	Quote(ctx context.Context, token string) (*model.Quote, error)
	End(ctx context.Context, token string) error
	Close()
}

type sessionService struct {
	tours     repository.TourRepository
	bookings  repository.BookingRepository
	validator *validator.BookingValidator
	publisher EventPublisher
	sealer    *sealer.Sealer
	store     *SessionStore
	cfg       *config.Config
}

func NewSessionService(
	tours repository.TourRepository,
	bookings repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher EventPublisher,
	sealer *sealer.Sealer,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		tours:     tours,
		bookings:  bookings,
		validator: validator,
		publisher: publisher,
		sealer:    sealer,
		store:     NewSessionStore(cfg.SessionTTL),
		cfg:       cfg,
	}
}

func (s *sessionService) Start(ctx context.Context, req *model.StartSessionRequest) (*model.BookingSession, error) {
	req.UserID = sanitizer.TrimAndNormalize(req.UserID)
	if err := s.validator.ValidateStartSession(req); err != nil {
		return nil, validationError(err)
	}

	sess := &session{
		id:     uuid.NewString(),
		userID: req.UserID,
		workflow: workflow.New(workflow.WithRates(workflow.Rates{
			ServiceFee: s.cfg.ServiceFeeRate,
			Tax:        s.cfg.TaxRate,
		})),
	}

	token, err := s.sealer.Seal(sess.id, sess.userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue booking session token", err)
	}
	sess.token = token
	s.store.put(sess)

	s.cfg.Log.Info("Booking session started",
		"session_id", sess.id,
		"user_id", sess.userID,
	)
	return s.snapshot(sess), nil
}

func (s *sessionService) Get(ctx context.Context, token string) (*model.BookingSession, error) {
	return s.withSession(token, func(sess *session) error {
		return nil
	})
}

func (s *sessionService) SelectTour(ctx context.Context, token string, req *model.SelectTourRequest) (*model.BookingSession, error) {
	req.TourID = sanitizer.TrimAndNormalize(req.TourID)
	if err := s.validator.ValidateSelectTour(req); err != nil {
		return nil, validationError(err)
	}

	return s.withSession(token, func(sess *session) error {
		if sess.workflow.Step() != model.StepTourSelection {
			return stepPrecondition("A tour can only be selected on the tour selection step", sess.workflow.Step())
		}

		tour, err := s.tours.FindByID(ctx, req.TourID)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrTourNotFound) {
				return apperrors.NotFoundWithID("Tour", req.TourID)
			}
			s.cfg.Log.Error("Failed to load tour", "tour_id", req.TourID, "error", err)
			return apperrors.Internal("Failed to retrieve tour", err)
		}

		sess.workflow.SelectTour(*tour)
		s.cfg.Log.Debug("Tour selected", "session_id", sess.id, "tour_id", tour.ID)
		return nil
	})
}

func (s *sessionService) SetGuestInfo(ctx context.Context, token string, info *model.GuestInfo) (*model.BookingSession, error) {
	s.sanitizeGuestInfo(info)
	if err := s.validator.ValidateGuestInfo(info); err != nil {
		return nil, validationError(err)
	}

	return s.withSession(token, func(sess *session) error {
		if sess.workflow.Step() != model.StepGuestDetails {
			return stepPrecondition("Guest details can only be set on the guest details step", sess.workflow.Step())
		}
		sess.workflow.SetGuestInfo(*info)
		return nil
	})
}

func (s *sessionService) Advance(ctx context.Context, token string) (*model.BookingSession, error) {
	return s.withSession(token, func(sess *session) error {
		wf := sess.workflow
		if err := canProceed(wf.State()); err != nil {
			return err
		}
		if !wf.Advance() {
			return nil
		}
		if wf.Step() != model.StepConfirmation {
			return nil
		}

		if err := s.confirm(ctx, sess); err != nil {
			wf.Retreat()
			return err
		}
		return nil
	})
}

// Retreat is refused once the booking is confirmed, since the recorded booking
// is tied to the session's booking id.
func (s *sessionService) Retreat(ctx context.Context, token string) (*model.BookingSession, error) {
	return s.withSession(token, func(sess *session) error {
		if sess.workflow.Step() == model.StepConfirmation {
			return stepPrecondition("A confirmed booking cannot go back; reset the session to start over", model.StepConfirmation)
		}
		sess.workflow.Retreat()
		return nil
	})
}

func (s *sessionService) Reset(ctx context.Context, token string) (*model.BookingSession, error) {
	return s.withSession(token, func(sess *session) error {
		sess.workflow.Reset()
		return nil
	})
}

func (s *sessionService) Quote(ctx context.Context, token string) (*model.Quote, error) {
	booking, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return &booking.Quote, nil
}

func (s *sessionService) End(ctx context.Context, token string) error {
	sessionID, err := s.openToken(token)
	if err != nil {
		return err
	}
	if !s.store.remove(sessionID) {
		return apperrors.NotFound("Booking session")
	}

	s.cfg.Log.Info("Booking session ended", "session_id", sessionID)
	return nil
}

func (s *sessionService) Close() {
	s.store.Stop()
}

func (s *sessionService) withSession(token string, fn func(sess *session) error) (*model.BookingSession, error) {
	sessionID, err := s.openToken(token)
	if err != nil {
		return nil, err
	}

	sess, ok := s.store.acquire(sessionID)
	if !ok {
		return nil, apperrors.NotFound("Booking session")
	}
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

func (s *sessionService) openToken(token string) (string, error) {
	parts, err := s.sealer.Open(token, 2)
	if err != nil {
		return "", apperrors.Wrap(bookingserrors.ErrInvalidToken, apperrors.CodeInvalidInput, "Invalid booking session token", http.StatusBadRequest)
	}
	return parts[0], nil
}

func (s *sessionService) snapshot(sess *session) *model.BookingSession {
	return &model.BookingSession{
		Token:     sess.token,
		State:     sess.workflow.State(),
		Quote:     sess.workflow.Quote(),
		ExpiresAt: s.store.expiry(sess),
	}
}

// confirm records the booking once per (session, booking id) and publishes the
// confirmation event when the record is new.
func (s *sessionService) confirm(ctx context.Context, sess *session) error {
	state := sess.workflow.State()
	if state.SelectedTour == nil || state.GuestInfo == nil {
		return apperrors.PreconditionFailed("Booking is incomplete", nil)
	}

	record := &model.BookingRecord{
		BookingID: state.BookingID,
		SessionID: sess.id,
		UserID:    sess.userID,
		Tour:      *state.SelectedTour,
		GuestInfo: *state.GuestInfo,
		Quote:     sess.workflow.Quote(),
		Status:    model.BookingStatusConfirmed,
	}

	var created bool
	err := s.bookings.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		created = false
		record.ID = ""
		_, err := s.bookings.FindBySessionBooking(sessCtx, sess.id, state.BookingID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, bookingserrors.ErrNotFound) {
			return err
		}
		if err := s.bookings.Create(sessCtx, record); err != nil {
			if errors.Is(err, bookingserrors.ErrAlreadyRecorded) {
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to record booking",
			"session_id", sess.id,
			"booking_id", state.BookingID,
			"error", err,
		)
		return apperrors.Internal("Failed to record booking", err)
	}
	if !created {
		return nil
	}

	s.cfg.Log.Info("Booking confirmed",
		"id", record.ID,
		"booking_id", record.BookingID,
		"session_id", record.SessionID,
		"tour_id", record.Tour.ID,
		"total", record.Quote.Total,
	)

	event := model.BookingConfirmedEvent{
		BookingID:   record.BookingID,
		SessionID:   record.SessionID,
		UserID:      record.UserID,
		TourID:      record.Tour.ID,
		TourName:    record.Tour.Name,
		Guests:      record.GuestInfo.NumberOfGuests,
		Total:       record.Quote.Total,
		ConfirmedAt: record.CreatedAt,
	}
	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish booking confirmation",
			"booking_id", record.BookingID,
			"error", err,
		)
	}
	return nil
}

func (s *sessionService) sanitizeGuestInfo(info *model.GuestInfo) {
	lead := &info.LeadGuest
	lead.FirstName = sanitizer.NormalizeName(lead.FirstName)
	lead.LastName = sanitizer.NormalizeName(lead.LastName)
	lead.Email = sanitizer.NormalizeEmail(lead.Email)
	if phone := sanitizer.NormalizePhone(lead.Phone); phone != "" {
		lead.Phone = phone
	}
	lead.Nationality = sanitizer.TrimAndNormalize(lead.Nationality)
	if lead.Nationality == "" {
		lead.Nationality = locale.InferNationalityFromPhone(lead.Phone)
	}

	info.DietaryRestrictions = sanitizer.NormalizeDietaryRestrictions(info.DietaryRestrictions)
	info.EmergencyContact = sanitizer.TrimAndNormalize(info.EmergencyContact)
	info.SpecialRequests = sanitizer.NormalizeText(info.SpecialRequests)
	info.AccessibilityNeeds = sanitizer.NormalizeText(info.AccessibilityNeeds)
}
