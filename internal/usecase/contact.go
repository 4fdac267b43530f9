package usecase

import (
	"context"
	"log/slog"

	"github.com/inkandimagination/artstore/internal/adapter/mailer"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

// ContactUseCase handles contact form intake and admin message management.
type ContactUseCase struct {
	contacts repository.ContactRepository
	notifier mailer.Notifier
	logger   *slog.Logger
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository, notifier mailer.Notifier, logger *slog.Logger) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, notifier: notifier, logger: logger}
}

// Submit stores a contact message and notifies the admin best-effort.
func (u *ContactUseCase) Submit(ctx context.Context, name, email, message string) (*model.Contact, error) {
	if err := ValidateContact(name, email, message); err != nil {
		return nil, err
	}

	contact, err := u.contacts.Create(ctx, &model.Contact{Name: name, Email: email, Message: message})
	if err != nil {
		return nil, err
	}

	if err := u.notifier.SendContactNotification(contact); err != nil {
		u.logger.Error("contact notification failed",
			slog.Int64("contact_id", contact.ID),
			slog.String("error", err.Error()),
		)
	}
	return contact, nil
}

// List returns messages, optionally filtered by status.
func (u *ContactUseCase) List(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	return u.contacts.List(ctx, status)
}

// Get returns one message and marks an unread one as read.
func (u *ContactUseCase) Get(ctx context.Context, id int64) (*model.Contact, error) {
	contact, err := u.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.Status == model.ContactStatusNew {
		return u.contacts.UpdateStatus(ctx, id, model.ContactStatusRead, nil)
	}
	return contact, nil
}

// UpdateStatus applies admin edits to a message.
func (u *ContactUseCase) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error) {
	return u.contacts.UpdateStatus(ctx, id, status, replied)
}
