package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/test"
)

func TestContactSubmitNotifiesAdmin(t *testing.T) {
	contacts := test.NewContactRepositoryStub()
	notifier := &test.NotifierStub{}
	uc := NewContactUseCase(contacts, notifier, discardLogger())

	contact, err := uc.Submit(context.Background(), "A Visitor", "visitor@example.com", "Is the harbor piece available?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID == 0 {
		t.Fatal("contact must be assigned an id")
	}
	if len(notifier.ContactNotices) != 1 {
		t.Fatalf("expected one admin notification, got %d", len(notifier.ContactNotices))
	}
}

func TestContactSubmitNotificationFailureIsBestEffort(t *testing.T) {
	contacts := test.NewContactRepositoryStub()
	notifier := &test.NotifierStub{ContactErr: errors.New("smtp down")}
	uc := NewContactUseCase(contacts, notifier, discardLogger())

	if _, err := uc.Submit(context.Background(), "A Visitor", "visitor@example.com", "Hello"); err != nil {
		t.Fatalf("notification failure must not fail submission: %v", err)
	}
	if len(contacts.Items) != 1 {
		t.Fatal("contact must still be persisted")
	}
}

func TestContactSubmitValidation(t *testing.T) {
	uc := NewContactUseCase(test.NewContactRepositoryStub(), &test.NotifierStub{}, discardLogger())

	_, err := uc.Submit(context.Background(), "", "bad", "")
	var validation domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestContactGetMarksNewAsRead(t *testing.T) {
	contacts := test.NewContactRepositoryStub()
	uc := NewContactUseCase(contacts, &test.NotifierStub{}, discardLogger())

	created, err := contacts.Create(context.Background(), &model.Contact{Name: "A", Email: "a@b.c", Message: "hi", Status: model.ContactStatusNew})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Status != model.ContactStatusRead {
		t.Fatalf("expected read, got %s", fetched.Status)
	}

	// A replied message keeps its status on read.
	replied := true
	if _, err := contacts.UpdateStatus(context.Background(), created.ID, model.ContactStatusReplied, &replied); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fetched, err = uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Status != model.ContactStatusReplied {
		t.Fatalf("expected replied to stay, got %s", fetched.Status)
	}
}
