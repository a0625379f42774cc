package manager

import (
	"time"

	"smarttour/pkg/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleItems is the starter wishlist used to seed demo accounts.
func SampleItems() []model.WishlistItem {
	return []model.WishlistItem{
		{
			ID:              "wish_1",
			Name:            "Jerash Roman Ruins",
			Description:     "Walk the colonnaded streets and theatres of one of the best preserved Roman cities.",
			EstimatedBudget: 150,
			Priority:        model.PriorityHigh,
			AddedDate:       day(2024, time.July, 1),
			BestTimeToVisit: "Spring",
			Duration:        "Full day",
			Difficulty:      "Easy",
			TourID:          "4",
		},
		{
			ID:              "wish_2",
			Name:            "Aqaba Red Sea Diving",
			Description:     "Coral reefs and wreck dives in the Gulf of Aqaba.",
			EstimatedBudget: 300,
			Priority:        model.PriorityMedium,
			AddedDate:       day(2024, time.June, 20),
			BestTimeToVisit: "Autumn",
			Duration:        "2 days",
			Difficulty:      "Moderate",
			TourID:          "6",
		},
		{
			ID:              "wish_3",
			Name:            "Dana Biosphere Reserve",
			Description:     "Hike through Jordan's largest nature reserve and stay at the eco-lodge.",
			EstimatedBudget: 200,
			Priority:        model.PriorityMedium,
			AddedDate:       day(2024, time.June, 15),
			BestTimeToVisit: "Spring",
			Duration:        "2 days",
			Difficulty:      "Challenging",
		},
		{
			ID:              "wish_4",
			Name:            "Ajloun Castle",
			Description:     "Twelfth century fortress overlooking the Jordan Valley.",
			EstimatedBudget: 80,
			Priority:        model.PriorityLow,
			AddedDate:       day(2024, time.May, 30),
			BestTimeToVisit: "Year-round",
			Duration:        "Half day",
			Difficulty:      "Easy",
		},
		{
			ID:              "wish_5",
			Name:            "Kerak Castle",
			Description:     "Crusader castle on the King's Highway.",
			EstimatedBudget: 120,
			Priority:        model.PriorityMedium,
			AddedDate:       day(2024, time.May, 15),
			BestTimeToVisit: "Autumn",
			Duration:        "Half day",
			Difficulty:      "Easy",
		},
	}
}
