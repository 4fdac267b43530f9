package repository

import (
	"context"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// ContactRepository describes persistence operations on contact messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
	List(ctx context.Context, status model.ContactStatus) ([]model.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.ContactStatus) (int64, error)
	Recent(ctx context.Context, limit int) ([]model.Contact, error)
}
