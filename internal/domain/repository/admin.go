package repository

import (
	"context"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// AdminRepository describes persistence operations on admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
}
