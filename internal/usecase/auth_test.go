package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/test"
)

func TestAuthRegisterIssuesToken(t *testing.T) {
	admins := test.NewAdminRepositoryStub()
	uc := NewAuthUseCase(admins, test.HasherStub{}, test.StrategyStub{})

	admin, token, err := uc.Register(context.Background(), "Ari", "Ari@Example.com", "long-enough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.Email != "ari@example.com" {
		t.Fatalf("email must be lowercased, got %q", admin.Email)
	}
	if token != "token:1" {
		t.Fatalf("unexpected token %q", token)
	}
	if admins.ByEmail["ari@example.com"].PasswordHash != "hash:long-enough" {
		t.Fatal("password must be stored hashed")
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	uc := NewAuthUseCase(test.NewAdminRepositoryStub(), test.HasherStub{}, test.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "Ari", "ari@example.com", "short"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	admins := test.NewAdminRepositoryStub()
	uc := NewAuthUseCase(admins, test.HasherStub{}, test.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "Ari", "ari@example.com", "long-enough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "Ari", "ari@example.com", "long-enough"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthAuthenticate(t *testing.T) {
	admins := test.NewAdminRepositoryStub()
	uc := NewAuthUseCase(admins, test.HasherStub{}, test.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "Ari", "ari@example.com", "long-enough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admin, token, err := uc.Authenticate(context.Background(), "ARI@example.com", "long-enough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != 1 || token != "token:1" {
		t.Fatalf("unexpected admin %d token %q", admin.ID, token)
	}

	if _, _, err := uc.Authenticate(context.Background(), "ari@example.com", "wrong-password"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "long-enough"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestAuthParseTokenRoundTrip(t *testing.T) {
	uc := NewAuthUseCase(test.NewAdminRepositoryStub(), test.HasherStub{}, test.StrategyStub{})

	id, err := uc.ParseToken("token:42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}
}
