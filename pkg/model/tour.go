package model

const (
	CategoryAll        = "all"
	CategoryHistorical = "historical"
	CategoryAdventure  = "adventure"
	CategoryWellness   = "wellness"
	CategoryCultural   = "cultural"
)

var TourCategories = []string{
	CategoryHistorical,
	CategoryAdventure,
	CategoryWellness,
	CategoryCultural,
}

// Tour is a read-only catalog entry. Price is per person.
type Tour struct {
	ID          string   `json:"id" bson:"_id" validate:"required"`
	Name        string   `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" bson:"description"`
	Duration    string   `json:"duration" bson:"duration"`
	Price       float64  `json:"price" bson:"price" validate:"gte=0"`
	Category    string   `json:"category" bson:"category" validate:"required,oneof=historical adventure wellness cultural"`
	Rating      float64  `json:"rating" bson:"rating"`
	ReviewCount int      `json:"review_count" bson:"review_count"`
	Highlights  []string `json:"highlights,omitempty" bson:"highlights,omitempty"`
	Includes    []string `json:"includes,omitempty" bson:"includes,omitempty"`
}

func IsTourCategory(category string) bool {
	for _, c := range TourCategories {
		if c == category {
			return true
		}
	}
	return false
}
