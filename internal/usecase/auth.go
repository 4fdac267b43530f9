package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
	pkgAuth "github.com/inkandimagination/artstore/internal/pkg/auth"
)

const minPasswordLength = 8

// AuthUseCase manages admin accounts and bearer tokens.
type AuthUseCase struct {
	admins   repository.AdminRepository
	hasher   pkgAuth.PasswordHasher
	strategy pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(admins repository.AdminRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{admins: admins, hasher: hasher, strategy: strategy}
}

// Register creates an admin account and returns a signed token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.Admin, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	admin, err := u.admins.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.strategy.IssueToken(admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// Authenticate verifies credentials and returns a signed token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Admin, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.strategy.IssueToken(admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ParseToken validates a bearer token and returns the admin id.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	return u.strategy.ParseToken(token)
}

// Admin returns the account behind an authenticated request.
func (u *AuthUseCase) Admin(ctx context.Context, id int64) (*model.Admin, error) {
	return u.admins.GetByID(ctx, id)
}
