// Package manager holds a user's wishlist in memory and implements its
// mutations, filtering, ordering and aggregates. Invalid mutations are silent
// no-ops; Add is the only operation that reports errors.
package manager

import (
	"errors"
	"slices"
	"time"

	"smarttour/pkg/model"
)

var (
	ErrDuplicateID     = errors.New("wishlist item id already exists")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high")
	ErrEmptyID         = errors.New("wishlist item id cannot be empty")
)

type Manager struct {
	items []model.WishlistItem
	now   func() time.Time
}

// New builds a manager over a copy of items. Later duplicates of an id are dropped.
func New(items []model.WishlistItem) *Manager {
	m := &Manager{
		items: make([]model.WishlistItem, 0, len(items)),
		now:   time.Now,
	}
	for _, it := range items {
		if m.indexOf(it.ID) >= 0 {
			continue
		}
		m.items = append(m.items, it)
	}
	return m
}

func (m *Manager) Items() []model.WishlistItem {
	return slices.Clone(m.items)
}

func (m *Manager) Len() int {
	return len(m.items)
}

func (m *Manager) Get(id string) (model.WishlistItem, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return model.WishlistItem{}, false
	}
	return m.items[idx], true
}

func (m *Manager) Add(item model.WishlistItem) error {
	if item.ID == "" {
		return ErrEmptyID
	}
	if !item.Priority.Valid() {
		return ErrInvalidPriority
	}
	if m.indexOf(item.ID) >= 0 {
		return ErrDuplicateID
	}
	if item.AddedDate.IsZero() {
		item.AddedDate = m.now().UTC()
	}
	m.items = append(m.items, item)
	return nil
}

// Remove deletes the item with id. A missing id leaves the list untouched.
func (m *Manager) Remove(id string) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	return true
}

// RemoveByTour deletes every item linked to tourID and returns how many were removed.
func (m *Manager) RemoveByTour(tourID string) int {
	if tourID == "" {
		return 0
	}
	before := len(m.items)
	m.items = slices.DeleteFunc(m.items, func(it model.WishlistItem) bool {
		return it.TourID == tourID
	})
	return before - len(m.items)
}

// UpdatePriority is a no-op for unknown ids and for values outside low/medium/high.
func (m *Manager) UpdatePriority(id string, p model.Priority) bool {
	if !p.Valid() {
		return false
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	m.items[idx].Priority = p
	return true
}

// View filters then sorts the current items.
func (m *Manager) View(priority string, criterion SortCriterion) []model.WishlistItem {
	return Sort(Filter(m.items, priority), criterion)
}

func (m *Manager) Aggregate() model.WishlistStats {
	return Aggregate(m.items)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.items, func(it model.WishlistItem) bool {
		return it.ID == id
	})
}
