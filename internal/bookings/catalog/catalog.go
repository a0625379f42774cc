// Package catalog filters the tour catalog and provides the default tours
// seeded into new environments.
package catalog

import (
	"strings"

	"smarttour/pkg/model"
)

// Filter keeps the tours in category ("all" keeps every category) whose name or
// description contains search, ignoring case. Order is preserved.
func Filter(tours []model.Tour, category, search string) []model.Tour {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Tour, 0, len(tours))
	for _, t := range tours {
		if category != "" && category != model.CategoryAll && t.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Name), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func DefaultTours() []model.Tour {
	return []model.Tour{
		{
			ID:          "1",
			Name:        "Petra Day Tour",
			Description: "Explore the ancient Nabataean city carved into rose-red cliffs, including the Treasury and the Monastery.",
			Duration:    "Full day (8 hours)",
			Price:       75,
			Category:    model.CategoryHistorical,
			Rating:      4.9,
			ReviewCount: 1250,
			Highlights:  []string{"The Treasury", "The Monastery", "Royal Tombs", "Siq canyon walk"},
			Includes:    []string{"Hotel pickup", "Licensed guide", "Entrance fees", "Lunch"},
		},
		{
			ID:          "2",
			Name:        "Wadi Rum Desert Adventure",
			Description: "Jeep safari through the Valley of the Moon with a Bedouin camp dinner under the stars.",
			Duration:    "2 days, 1 night",
			Price:       120,
			Category:    model.CategoryAdventure,
			Rating:      4.8,
			ReviewCount: 890,
			Highlights:  []string{"Jeep safari", "Sunset viewpoint", "Bedouin camp", "Stargazing"},
			Includes:    []string{"Transport", "Camp accommodation", "Dinner and breakfast", "Local guide"},
		},
		{
			ID:          "3",
			Name:        "Dead Sea Wellness Retreat",
			Description: "Float in the lowest point on Earth and unwind with a mineral mud spa treatment.",
			Duration:    "Half day (5 hours)",
			Price:       55,
			Category:    model.CategoryWellness,
			Rating:      4.7,
			ReviewCount: 640,
			Highlights:  []string{"Dead Sea float", "Mud treatment", "Resort beach access"},
			Includes:    []string{"Transport", "Beach access", "Towels"},
		},
		{
			ID:          "4",
			Name:        "Jerash & Ajloun Castle",
			Description: "Walk the colonnaded streets of Roman Jerash and visit the hilltop Ayyubid castle of Ajloun.",
			Duration:    "Full day (7 hours)",
			Price:       65,
			Category:    model.CategoryHistorical,
			Rating:      4.6,
			ReviewCount: 520,
			Highlights:  []string{"Oval Plaza", "Hadrian's Arch", "Ajloun Castle"},
			Includes:    []string{"Hotel pickup", "Licensed guide", "Entrance fees"},
		},
		{
			ID:          "5",
			Name:        "Amman City Walking Tour",
			Description: "Discover the Citadel, the Roman Theatre and the downtown souks of Jordan's capital.",
			Duration:    "Half day (4 hours)",
			Price:       35,
			Category:    model.CategoryCultural,
			Rating:      4.5,
			ReviewCount: 410,
			Highlights:  []string{"Amman Citadel", "Roman Theatre", "Rainbow Street", "Local food tasting"},
			Includes:    []string{"Local guide", "Food tasting", "Entrance fees"},
		},
		{
			ID:          "6",
			Name:        "Aqaba Red Sea Diving",
			Description: "Dive the coral reefs and wrecks of the Gulf of Aqaba with certified instructors.",
			Duration:    "Full day (6 hours)",
			Price:       85,
			Category:    model.CategoryAdventure,
			Rating:      4.8,
			ReviewCount: 370,
			Highlights:  []string{"Coral reefs", "Cedar Pride wreck", "Marine park"},
			Includes:    []string{"Diving equipment", "Instructor", "Boat trip", "Lunch"},
		},
	}
}
