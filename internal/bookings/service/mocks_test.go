package service

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"testing"
	"time"

	"smarttour/internal/bookings/catalog"
	bookingserrors "smarttour/internal/bookings/errors"
	"smarttour/internal/bookings/validator"
	"smarttour/pkg/config"
	mongotx "smarttour/pkg/db/mongo"
	"smarttour/pkg/logger"
	"smarttour/pkg/model"
	"smarttour/pkg/sealer"

	"go.mongodb.org/mongo-driver/mongo"
)

// ────────────────────────────────────────────────
// Mock repositories and publisher
// ────────────────────────────────────────────────

type mockTourRepository struct {
	tours   []model.Tour
	findErr error
}

func (m *mockTourRepository) FindAll(ctx context.Context) ([]model.Tour, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.tours, nil
}

func (m *mockTourRepository) FindByID(ctx context.Context, id string) (*model.Tour, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, t := range m.tours {
		if t.ID == id {
			tour := t
			return &tour, nil
		}
	}
	return nil, bookingserrors.ErrTourNotFound
}

func (m *mockTourRepository) Upsert(ctx context.Context, tour *model.Tour) error {
	return nil
}

type mockBookingRepository struct {
	mu        sync.Mutex
	records   []*model.BookingRecord
	createErr error
	findByID  func(ctx context.Context, id string) (*model.BookingRecord, error)
	countFunc func(ctx context.Context) (int64, error)
	txCalls   int
}

func (m *mockBookingRepository) Create(ctx context.Context, record *model.BookingRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = "rec-" + record.BookingID
	record.CreatedAt = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	stored := *record
	m.records = append(m.records, &stored)
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.BookingRecord, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindBySessionBooking(ctx context.Context, sessionID, bookingID string) (*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.SessionID == sessionID && r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	m.txCalls++
	return fn(mongo.NewSessionContext(ctx, nil))
}

type mockPublisher struct {
	events []model.BookingConfirmedEvent
	err    error
}

func (m *mockPublisher) PublishBookingConfirmed(ctx context.Context, event model.BookingConfirmedEvent) error {
	m.events = append(m.events, event)
	return m.err
}

// ────────────────────────────────────────────────
// Fixtures
// ────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		Log:            logger.Discard(),
		ServiceFeeRate: 0.05,
		TaxRate:        0.16,
		SessionTTL:     time.Hour,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	}
}

type fixture struct {
	service   *sessionService
	bookings  *mockBookingRepository
	publisher *mockPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	key := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
	s, err := sealer.New(key)
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}

	cfg := testConfig()
	bookings := &mockBookingRepository{}
	publisher := &mockPublisher{}
	svc := NewSessionService(
		&mockTourRepository{tours: catalog.DefaultTours()},
		bookings,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		s,
		cfg,
	).(*sessionService)
	t.Cleanup(svc.Close)

	return &fixture{service: svc, bookings: bookings, publisher: publisher}
}

func guestInfo(guests int) *model.GuestInfo {
	return &model.GuestInfo{
		NumberOfGuests: guests,
		LeadGuest: model.LeadGuest{
			FirstName: "Omar",
			LastName:  "Khalil",
			Email:     "omar@example.com",
			Phone:     "+962791234567",
		},
	}
}
