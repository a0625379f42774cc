package service

import (
	"context"
	"errors"
	"time"

	wishlisterrors "smarttour/internal/wishlist/errors"
	"smarttour/internal/wishlist/manager"
	"smarttour/internal/wishlist/repository"
	"smarttour/internal/wishlist/validator"
	"smarttour/pkg/config"
	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/model"
	"smarttour/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DefaultSort = manager.SortByPriority
	maxUserID   = 64
)

type WishlistService interface {
	List(ctx context.Context, userID, priority, sort string) (*model.WishlistView, error)
	Stats(ctx context.Context, userID string) (*model.WishlistStats, error)
	Seed(ctx context.Context, userID string, items []model.WishlistItem) (*model.WishlistView, error)
	Clear(ctx context.Context, userID string) error
	AddItem(ctx context.Context, userID string, item *model.WishlistItem) (*model.WishlistItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	UpdatePriority(ctx context.Context, userID, itemID string, update *model.PriorityUpdate) (*model.WishlistItem, error)
	FulfillTour(ctx context.Context, userID, tourID string) (int, error)
}

type wishlistService struct {
	repo      repository.WishlistRepository
	validator *validator.WishlistValidator
	cfg       *config.Config
	now       func() time.Time
}

func NewWishlistService(
	repo repository.WishlistRepository,
	validator *validator.WishlistValidator,
	cfg *config.Config,
) WishlistService {
	return &wishlistService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *wishlistService) List(ctx context.Context, userID, priority, sort string) (*model.WishlistView, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	priority = sanitizer.NormalizeFilter(priority, model.PriorityAll)
	if priority != model.PriorityAll && !model.Priority(priority).Valid() {
		return nil, apperrors.InvalidInput("priority filter must be one of: all, low, medium, high")
	}

	criterion := manager.SortCriterion(sanitizer.NormalizeFilter(sort, string(DefaultSort)))
	if !criterion.Valid() {
		return nil, apperrors.InvalidInput("sort must be one of: priority, budget, date")
	}

	m, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.WishlistView{
		Items: m.View(priority, criterion),
		Stats: m.Aggregate(),
	}, nil
}

func (s *wishlistService) Stats(ctx context.Context, userID string) (*model.WishlistStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	m, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := m.Aggregate()
	return &stats, nil
}

// Seed replaces the whole wishlist. A nil slice seeds the sample destinations.
func (s *wishlistService) Seed(ctx context.Context, userID string, items []model.WishlistItem) (*model.WishlistView, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	if items == nil {
		items = manager.SampleItems()
	}
	for i := range items {
		s.prepareItem(&items[i])
	}
	if err := s.validator.ValidateItems(items); err != nil {
		return nil, validationError(err)
	}

	m := manager.New(items)
	wishlist := &model.Wishlist{UserID: userID, Items: m.Items()}
	if err := s.repo.Save(ctx, wishlist); err != nil {
		s.cfg.Log.Error("Failed to save wishlist", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to save wishlist", err)
	}

	s.cfg.Log.Info("Wishlist replaced", "user_id", userID, "items", m.Len())
	return &model.WishlistView{
		Items: m.View(model.PriorityAll, DefaultSort),
		Stats: m.Aggregate(),
	}, nil
}

func (s *wishlistService) Clear(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil && !errors.Is(err, wishlisterrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to delete wishlist", "user_id", userID, "error", err)
		return apperrors.Internal("Failed to delete wishlist", err)
	}

	s.cfg.Log.Info("Wishlist cleared", "user_id", userID)
	return nil
}

func (s *wishlistService) AddItem(ctx context.Context, userID string, item *model.WishlistItem) (*model.WishlistItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	s.prepareItem(item)
	if err := s.validator.ValidateItem(item); err != nil {
		return nil, validationError(err)
	}

	var added model.WishlistItem
	err := s.mutate(ctx, userID, func(m *manager.Manager) error {
		if m.Len() >= validator.MaxItems {
			return apperrors.Conflict("Wishlist is full")
		}
		if err := m.Add(*item); err != nil {
			if errors.Is(err, manager.ErrDuplicateID) {
				return apperrors.Conflict("Wishlist item already exists").WithDetails(map[string]any{"id": item.ID})
			}
			return apperrors.InvalidInput(err.Error())
		}
		added, _ = m.Get(item.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Wishlist item added",
		"user_id", userID,
		"item_id", added.ID,
		"priority", added.Priority,
	)
	return &added, nil
}

// RemoveItem succeeds whether or not the item exists.
func (s *wishlistService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	return s.mutate(ctx, userID, func(m *manager.Manager) error {
		if m.Remove(itemID) {
			s.cfg.Log.Info("Wishlist item removed", "user_id", userID, "item_id", itemID)
		}
		return nil
	})
}

func (s *wishlistService) UpdatePriority(ctx context.Context, userID, itemID string, update *model.PriorityUpdate) (*model.WishlistItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePriorityUpdate(update); err != nil {
		return nil, validationError(err)
	}

	var updated model.WishlistItem
	err := s.mutate(ctx, userID, func(m *manager.Manager) error {
		if !m.UpdatePriority(itemID, update.Priority) {
			return apperrors.NotFoundWithID("Wishlist item", itemID)
		}
		updated, _ = m.Get(itemID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Wishlist priority updated",
		"user_id", userID,
		"item_id", itemID,
		"priority", update.Priority,
	)
	return &updated, nil
}

// FulfillTour removes the items a user has now booked.
func (s *wishlistService) FulfillTour(ctx context.Context, userID, tourID string) (int, error) {
	if userID == "" || tourID == "" {
		return 0, nil
	}

	var removed int
	err := s.mutate(ctx, userID, func(m *manager.Manager) error {
		removed = m.RemoveByTour(tourID)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		s.cfg.Log.Info("Booked tour removed from wishlist",
			"user_id", userID,
			"tour_id", tourID,
			"removed", removed,
		)
	}
	return removed, nil
}

// mutate loads the wishlist, applies fn and saves it inside one transaction.
// The save is skipped when fn left every item id and priority as it was.
func (s *wishlistService) mutate(ctx context.Context, userID string, fn func(m *manager.Manager) error) error {
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		m, err := s.load(sessCtx, userID)
		if err != nil {
			return err
		}
		before := m.Items()

		if err := fn(m); err != nil {
			return err
		}
		if !changed(before, m.Items()) {
			return nil
		}

		if err := s.repo.Save(sessCtx, &model.Wishlist{UserID: userID, Items: m.Items()}); err != nil {
			return apperrors.Internal("Failed to save wishlist", err)
		}
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			s.cfg.Log.Error("Wishlist transaction failed", "user_id", userID, "error", err)
			return apperrors.Internal("Failed to update wishlist", err)
		}
		if apperrors.HasCode(err, apperrors.CodeInternal) {
			s.cfg.Log.Error("Failed to update wishlist", "user_id", userID, "error", err)
		}
		return err
	}
	return nil
}

// load returns an empty manager for users without a stored wishlist.
func (s *wishlistService) load(ctx context.Context, userID string) (*manager.Manager, error) {
	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, wishlisterrors.ErrNotFound) {
			return manager.New(nil), nil
		}
		s.cfg.Log.Error("Failed to load wishlist", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve wishlist", err)
	}
	return manager.New(wishlist.Items), nil
}

func (s *wishlistService) prepareItem(item *model.WishlistItem) {
	item.ID = sanitizer.TrimAndNormalize(item.ID)
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Name = sanitizer.NormalizeName(item.Name)
	item.Description = sanitizer.NormalizeText(item.Description)
	item.Priority = model.Priority(sanitizer.NormalizeFilter(string(item.Priority), ""))
	item.BestTimeToVisit = sanitizer.TrimAndNormalize(item.BestTimeToVisit)
	item.Duration = sanitizer.TrimAndNormalize(item.Duration)
	item.Difficulty = sanitizer.TrimAndNormalize(item.Difficulty)
	item.TourID = sanitizer.TrimAndNormalize(item.TourID)
	if item.AddedDate.IsZero() {
		item.AddedDate = s.now().UTC().Truncate(time.Millisecond)
	}
}

func changed(before, after []model.WishlistItem) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Priority != after[i].Priority {
			return true
		}
	}
	return false
}

func validateUserID(userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("User ID cannot be empty")
	}
	if len(userID) > maxUserID {
		return apperrors.InvalidInput("User ID is too long")
	}
	if !validator.IsURLSafeID(userID) {
		return apperrors.InvalidInput("User ID may only contain letters, digits, '-' and '_'")
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Validation failed", verrs.Details())
	}
	return apperrors.InvalidInput(err.Error())
}
