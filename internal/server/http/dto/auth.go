package dto

import "github.com/inkandimagination/artstore/internal/domain/model"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminResponse is the public view of an admin account.
type AdminResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse carries the issued token alongside the account view.
type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// FromAdmin builds the response view of an admin account.
func FromAdmin(a *model.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Name: a.Name, Email: a.Email}
}
