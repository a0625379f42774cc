package service

import (
	"context"
	"errors"
	"sync"

	"smarttour/internal/bookings/catalog"
	bookingserrors "smarttour/internal/bookings/errors"
	"smarttour/internal/bookings/repository"
	"smarttour/pkg/config"
	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/model"
	"smarttour/pkg/sanitizer"
)

type BookingService interface {
	ListTours(ctx context.Context, category, search string) ([]model.Tour, error)
	GetTour(ctx context.Context, id string) (*model.Tour, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, int64, error)
	GetByID(ctx context.Context, id string) (*model.BookingRecord, error)
}

type bookingService struct {
	tours    repository.TourRepository
	bookings repository.BookingRepository
	cfg      *config.Config
}

func NewBookingService(
	tours repository.TourRepository,
	bookings repository.BookingRepository,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		tours:    tours,
		bookings: bookings,
		cfg:      cfg,
	}
}

func (s *bookingService) ListTours(ctx context.Context, category, search string) ([]model.Tour, error) {
	category = sanitizer.NormalizeFilter(category, model.CategoryAll)
	if category != model.CategoryAll && !model.IsTourCategory(category) {
		return nil, apperrors.InvalidInput("Unknown tour category: " + category)
	}

	tours, err := s.tours.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list tours", "error", err)
		return nil, apperrors.Internal("Failed to retrieve tours", err)
	}

	return catalog.Filter(tours, category, sanitizer.NormalizeSearch(search)), nil
}

func (s *bookingService) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Tour ID cannot be empty")
	}

	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrTourNotFound) {
			return nil, apperrors.NotFoundWithID("Tour", id)
		}
		return nil, apperrors.Internal("Failed to retrieve tour", err)
	}
	return tour, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var records []*model.BookingRecord
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.bookings.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		records, errFind = s.bookings.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return records, count, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.BookingRecord, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	record, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return record, nil
}
