package manager

import (
	"cmp"
	"slices"

	"smarttour/pkg/model"
)

type SortCriterion string

const (
	SortByPriority SortCriterion = "priority"
	SortByBudget   SortCriterion = "budget"
	SortByDate     SortCriterion = "date"
)

func (c SortCriterion) Valid() bool {
	return c == SortByPriority || c == SortByBudget || c == SortByDate
}

// Filter keeps the items whose priority equals the filter, preserving order.
// The "all" sentinel keeps every item.
func Filter(items []model.WishlistItem, priority string) []model.WishlistItem {
	if priority == model.PriorityAll {
		return slices.Clone(items)
	}
	out := make([]model.WishlistItem, 0, len(items))
	for _, it := range items {
		if string(it.Priority) == priority {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a sorted copy. All orders are stable. Unknown criteria return the input order.
func Sort(items []model.WishlistItem, criterion SortCriterion) []model.WishlistItem {
	out := slices.Clone(items)
	switch criterion {
	case SortByPriority:
		slices.SortStableFunc(out, func(a, b model.WishlistItem) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	case SortByBudget:
		slices.SortStableFunc(out, func(a, b model.WishlistItem) int {
			return cmp.Compare(a.EstimatedBudget, b.EstimatedBudget)
		})
	case SortByDate:
		slices.SortStableFunc(out, func(a, b model.WishlistItem) int {
			return b.AddedDate.Compare(a.AddedDate)
		})
	}
	return out
}

// Aggregate summarizes items. An empty list yields all zeros, including the average.
func Aggregate(items []model.WishlistItem) model.WishlistStats {
	stats := model.WishlistStats{Count: len(items)}
	for _, it := range items {
		stats.TotalBudget += it.EstimatedBudget
		if it.Priority == model.PriorityHigh {
			stats.HighPriorityCount++
		}
	}
	if stats.Count > 0 {
		stats.AverageBudget = stats.TotalBudget / float64(stats.Count)
	}
	return stats
}
