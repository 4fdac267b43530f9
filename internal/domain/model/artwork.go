package model

import "time"

// Dimensions describe the bounding box of an artwork in centimeters.
type Dimensions struct {
	Length  float64
	Breadth float64
	Height  float64
	Unit    string
}

// Artwork is a sellable catalog item with its stock counter.
type Artwork struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Price       float64
	ImageURL    string
	Stock       int
	Dimensions  Dimensions
	// WeightGrams is the unit weight used for shipment booking.
	WeightGrams float64
	Medium      string
	Featured    bool
	Sold        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ArtworkFilter narrows catalog listings.
type ArtworkFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	Sort     string
	Limit    int
}
