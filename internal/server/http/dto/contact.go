package dto

import (
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// ContactRequest is the public contact form body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UpdateContactStatusRequest is the admin body of PUT /api/contact/:id/status.
type UpdateContactStatusRequest struct {
	Status  string `json:"status"`
	Replied *bool  `json:"replied"`
}

// ContactResponse mirrors a stored contact message.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromContact builds the response view of a contact message.
func FromContact(c *model.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		Status:    string(c.Status),
		Replied:   c.Replied,
		CreatedAt: c.CreatedAt,
	}
}
