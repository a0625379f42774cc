package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityAll is the filter sentinel that matches every priority.
const PriorityAll = "all"

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank orders priorities high=3, medium=2, low=1. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type WishlistItem struct {
	ID              string    `json:"id" bson:"id" validate:"required,max=64,url_safe_id"`
	Name            string    `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=1000"`
	EstimatedBudget float64   `json:"estimated_budget" bson:"estimated_budget" validate:"gte=0"`
	Priority        Priority  `json:"priority" bson:"priority" validate:"required,priority"`
	AddedDate       time.Time `json:"added_date" bson:"added_date"`
	BestTimeToVisit string    `json:"best_time_to_visit,omitempty" bson:"best_time_to_visit,omitempty"`
	Duration        string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Difficulty      string    `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	TourID          string    `json:"tour_id,omitempty" bson:"tour_id,omitempty"`
}

type PriorityUpdate struct {
	Priority Priority `json:"priority" validate:"required,priority"`
}

type WishlistStats struct {
	Count             int     `json:"count"`
	TotalBudget       float64 `json:"total_budget"`
	HighPriorityCount int     `json:"high_priority_count"`
	AverageBudget     float64 `json:"average_budget"`
}

// Wishlist is the per-user document; UserID is the Mongo _id.
type Wishlist struct {
	UserID    string         `json:"user_id" bson:"_id"`
	Items     []WishlistItem `json:"items" bson:"items"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

type WishlistView struct {
	Items []WishlistItem `json:"items"`
	Stats WishlistStats  `json:"stats"`
}
