package client_test

import (
	"context"
	"slices"
	"sync"
	"time"

	bookingserrors "smarttour/internal/bookings/errors"
	wishlisterrors "smarttour/internal/wishlist/errors"
	mongotx "smarttour/pkg/db/mongo"
	"smarttour/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stand-ins for the Mongo repositories, shared by the flow tests.

type memoryTours struct {
	tours []model.Tour
}

func (m *memoryTours) FindAll(ctx context.Context) ([]model.Tour, error) {
	return slices.Clone(m.tours), nil
}

func (m *memoryTours) FindByID(ctx context.Context, id string) (*model.Tour, error) {
	for _, t := range m.tours {
		if t.ID == id {
			tour := t
			return &tour, nil
		}
	}
	return nil, bookingserrors.ErrTourNotFound
}

func (m *memoryTours) Upsert(ctx context.Context, tour *model.Tour) error {
	m.tours = append(m.tours, *tour)
	return nil
}

type memoryBookings struct {
	mu      sync.Mutex
	records []model.BookingRecord
}

func (m *memoryBookings) Create(ctx context.Context, record *model.BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	m.records = append(m.records, *record)
	return nil
}

func (m *memoryBookings) FindByID(ctx context.Context, id string) (*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			record := r
			return &record, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *memoryBookings) FindBySessionBooking(ctx context.Context, sessionID, bookingID string) (*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.SessionID == sessionID && r.BookingID == bookingID {
			record := r
			return &record, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *memoryBookings) FindAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.BookingRecord
	for i := range m.records {
		if int64(i) < offset || len(out) == limit {
			continue
		}
		record := m.records[i]
		out = append(out, &record)
	}
	return out, nil
}

func (m *memoryBookings) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func (m *memoryBookings) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type memoryWishlists struct {
	mu        sync.Mutex
	wishlists map[string]model.Wishlist
}

func newMemoryWishlists() *memoryWishlists {
	return &memoryWishlists{wishlists: make(map[string]model.Wishlist)}
}

func (m *memoryWishlists) FindByUser(ctx context.Context, userID string) (*model.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wishlists[userID]
	if !ok {
		return nil, wishlisterrors.ErrNotFound
	}
	w.Items = slices.Clone(w.Items)
	return &w, nil
}

func (m *memoryWishlists) Save(ctx context.Context, wishlist *model.Wishlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := *wishlist
	w.Items = slices.Clone(wishlist.Items)
	m.wishlists[w.UserID] = w
	return nil
}

func (m *memoryWishlists) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wishlists[userID]; !ok {
		return wishlisterrors.ErrNotFound
	}
	delete(m.wishlists, userID)
	return nil
}

func (m *memoryWishlists) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.BookingConfirmedEvent
}

func (p *recordingPublisher) PublishBookingConfirmed(ctx context.Context, event model.BookingConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
