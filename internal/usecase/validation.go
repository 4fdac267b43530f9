package usecase

import (
	"regexp"
	"strings"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

const maxNotesLength = 500

// ValidateOrderDraft checks an order draft before any persistence. Returns a
// ValidationError with per-field messages on failure.
func ValidateOrderDraft(draft OrderDraft) error {
	fields := map[string]string{}

	if len(draft.Items) == 0 {
		fields["items"] = "order must contain at least one item"
	}
	for _, item := range draft.Items {
		if item.Quantity < 1 {
			fields["items"] = "quantity must be at least 1"
			break
		}
	}

	if strings.TrimSpace(draft.CustomerName) == "" {
		fields["customerName"] = "customer name is required"
	}
	if !emailPattern.MatchString(draft.CustomerEmail) {
		fields["customerEmail"] = "a valid email is required"
	}
	if draft.Phone == "" || !phonePattern.MatchString(draft.Phone) {
		fields["phone"] = "a valid phone number is required"
	}
	if strings.TrimSpace(draft.Address.Street) == "" {
		fields["address.street"] = "street is required"
	}
	if strings.TrimSpace(draft.Address.City) == "" {
		fields["address.city"] = "city is required"
	}
	if strings.TrimSpace(draft.Address.State) == "" {
		fields["address.state"] = "state is required"
	}
	if strings.TrimSpace(draft.Address.ZipCode) == "" {
		fields["address.zipCode"] = "zip code is required"
	}
	if len(draft.Notes) > maxNotesLength {
		fields["notes"] = "notes cannot exceed 500 characters"
	}

	if len(fields) > 0 {
		return domainErrors.NewValidationError(fields)
	}
	return nil
}

// ValidateContact checks a contact form submission.
func ValidateContact(name, email, message string) error {
	fields := map[string]string{}

	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if !emailPattern.MatchString(email) {
		fields["email"] = "a valid email is required"
	}
	if strings.TrimSpace(message) == "" {
		fields["message"] = "message is required"
	}

	if len(fields) > 0 {
		return domainErrors.NewValidationError(fields)
	}
	return nil
}

// ValidateArtwork checks catalog input for admin create/update.
func ValidateArtwork(artwork *model.Artwork) error {
	fields := map[string]string{}

	if strings.TrimSpace(artwork.Title) == "" {
		fields["title"] = "title is required"
	}
	if artwork.Price < 0 {
		fields["price"] = "price cannot be negative"
	}
	if artwork.Stock < 0 {
		fields["stock"] = "stock cannot be negative"
	}

	if len(fields) > 0 {
		return domainErrors.NewValidationError(fields)
	}
	return nil
}
