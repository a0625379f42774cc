package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarttour/internal/bookings/catalog"
	bookingserrors "smarttour/internal/bookings/errors"
	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/model"
)

func TestListTours(t *testing.T) {
	svc := NewBookingService(&mockTourRepository{tours: catalog.DefaultTours()}, &mockBookingRepository{}, testConfig())

	tests := []struct {
		name     string
		category string
		search   string
		wantLen  int
		wantCode string
	}{
		{"empty filters", "", "", 6, ""},
		{"category is case insensitive", "Historical", "", 2, ""},
		{"search", "all", "  dead   sea ", 1, ""},
		{"unknown category", "nightlife", "", 0, apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours, err := svc.ListTours(context.Background(), tt.category, tt.search)
			if tt.wantCode != "" {
				if !apperrors.HasCode(err, tt.wantCode) {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tours) != tt.wantLen {
				t.Errorf("got %d tours, want %d", len(tours), tt.wantLen)
			}
		})
	}
}

func TestListTours_RepositoryError(t *testing.T) {
	svc := NewBookingService(&mockTourRepository{findErr: errors.New("timeout")}, &mockBookingRepository{}, testConfig())

	_, err := svc.ListTours(context.Background(), "", "")
	if !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestGetTour(t *testing.T) {
	svc := NewBookingService(&mockTourRepository{tours: catalog.DefaultTours()}, &mockBookingRepository{}, testConfig())

	tour, err := svc.GetTour(context.Background(), "2")
	if err != nil || tour.Name != "Wadi Rum Desert Adventure" {
		t.Errorf("GetTour(2) = %v, %v", tour, err)
	}
	if _, err := svc.GetTour(context.Background(), "42"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if _, err := svc.GetTour(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestGetByID_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"not found", bookingserrors.ErrNotFound, apperrors.CodeNotFound},
		{"invalid id", bookingserrors.ErrInvalidID, apperrors.CodeInvalidInput},
		{"driver error", errors.New("connection reset"), apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{
				findByID: func(ctx context.Context, id string) (*model.BookingRecord, error) {
					return nil, tt.repoErr
				},
			}
			svc := NewBookingService(&mockTourRepository{}, repo, testConfig())

			_, err := svc.GetByID(context.Background(), "abc")
			if !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	repo := &mockBookingRepository{
		records: []*model.BookingRecord{{ID: "1"}, {ID: "2"}},
		countFunc: func(ctx context.Context) (int64, error) {
			time.Sleep(5 * time.Millisecond)
			return 12, nil
		},
	}
	svc := NewBookingService(&mockTourRepository{}, repo, testConfig())

	records, count, err := svc.GetAll(context.Background(), 0, -5)
	if err != nil {
		t.Fatal(err)
	}
	if count != 12 || len(records) != 2 {
		t.Errorf("got %d records, count %d", len(records), count)
	}

	repo.countFunc = func(ctx context.Context) (int64, error) {
		return 0, errors.New("count failed")
	}
	if _, _, err := svc.GetAll(context.Background(), 10, 0); !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}
