package repository

import (
	"context"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// ArtworkRepository combines catalog persistence with the inventory ledger.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	GetByID(ctx context.Context, id int64) (*model.Artwork, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*model.Artwork, error)
	List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error)
	Update(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	Delete(ctx context.Context, id int64) error
	LowStock(ctx context.Context, threshold, limit int) ([]model.Artwork, error)
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
	Count(ctx context.Context) (int64, error)

	// CheckAvailability fails fast with InsufficientStockError on the first
	// line whose available stock is below the requested quantity. Advisory
	// only: it takes no lock, so DecrementStock re-validates at commit time.
	CheckAvailability(ctx context.Context, lines []model.OrderLine) error
	// DecrementStock applies each line as a single conditional update that
	// never drives stock negative. Lines already applied when a later line
	// fails are reported through the returned error for reconciliation.
	DecrementStock(ctx context.Context, lines []model.OrderLine) error
}
