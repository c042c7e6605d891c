package models

// CarListing is a single observation in the dataset.
type CarListing struct {
	Year  float64 `json:"year"`
	Price float64 `json:"price"`
}

// Listings maps a listing identifier to its observation.
type Listings map[string]CarListing
