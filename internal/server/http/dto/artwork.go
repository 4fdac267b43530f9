package dto

import (
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// DimensionsPayload mirrors an artwork's bounding box.
type DimensionsPayload struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	Unit    string  `json:"unit"`
}

// ArtworkRequest is the admin body for create/update of catalog items.
type ArtworkRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	ImageURL    string            `json:"imageUrl"`
	Stock       int               `json:"stock"`
	Dimensions  DimensionsPayload `json:"dimensions"`
	WeightGrams float64           `json:"weight"`
	Medium      string            `json:"medium"`
	Featured    bool              `json:"featured"`
	Sold        bool              `json:"sold"`
}

// ArtworkResponse mirrors a stored artwork.
type ArtworkResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	ImageURL    string            `json:"imageUrl"`
	Stock       int               `json:"stock"`
	Dimensions  DimensionsPayload `json:"dimensions"`
	WeightGrams float64           `json:"weight"`
	Medium      string            `json:"medium"`
	Featured    bool              `json:"featured"`
	Sold        bool              `json:"sold"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ToModel converts the request into the domain type.
func (r ArtworkRequest) ToModel(id int64) *model.Artwork {
	return &model.Artwork{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
		Dimensions: model.Dimensions{
			Length:  r.Dimensions.Length,
			Breadth: r.Dimensions.Breadth,
			Height:  r.Dimensions.Height,
			Unit:    r.Dimensions.Unit,
		},
		WeightGrams: r.WeightGrams,
		Medium:      r.Medium,
		Featured:    r.Featured,
		Sold:        r.Sold,
	}
}

// FromArtwork builds the response view of an artwork.
func FromArtwork(a *model.Artwork) ArtworkResponse {
	return ArtworkResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Price:       a.Price,
		ImageURL:    a.ImageURL,
		Stock:       a.Stock,
		Dimensions: DimensionsPayload{
			Length:  a.Dimensions.Length,
			Breadth: a.Dimensions.Breadth,
			Height:  a.Dimensions.Height,
			Unit:    a.Dimensions.Unit,
		},
		WeightGrams: a.WeightGrams,
		Medium:      a.Medium,
		Featured:    a.Featured,
		Sold:        a.Sold,
		CreatedAt:   a.CreatedAt,
	}
}
