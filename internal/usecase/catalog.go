package usecase

import (
	"context"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

// CatalogUseCase encapsulates artwork browsing and admin catalog management.
type CatalogUseCase struct {
	artworks repository.ArtworkRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(artworks repository.ArtworkRepository) *CatalogUseCase {
	return &CatalogUseCase{artworks: artworks}
}

// List returns artworks matching the filter.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	return u.artworks.List(ctx, filter)
}

// Get returns one artwork by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Artwork, error) {
	return u.artworks.GetByID(ctx, id)
}

// Create adds a new artwork to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if err := ValidateArtwork(artwork); err != nil {
		return nil, err
	}
	if artwork.Dimensions.Unit == "" {
		artwork.Dimensions.Unit = "cm"
	}
	return u.artworks.Create(ctx, artwork)
}

// Update replaces artwork fields.
func (u *CatalogUseCase) Update(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if err := ValidateArtwork(artwork); err != nil {
		return nil, err
	}
	return u.artworks.Update(ctx, artwork)
}

// Delete removes an artwork from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.artworks.Delete(ctx, id)
}
