package mailer

import (
	"strings"
	"testing"

	"github.com/inkandimagination/artstore/internal/config"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

func TestItemsSummary(t *testing.T) {
	summary := itemsSummary([]model.OrderItem{
		{Title: "Harbor Dusk", Quantity: 2, Price: 150.50},
		{Title: "Red Field", Quantity: 1, Price: 90},
	})
	if !strings.Contains(summary, "- Harbor Dusk x2 @ 150.50") {
		t.Fatalf("unexpected summary %q", summary)
	}
	if !strings.Contains(summary, "- Red Field x1 @ 90.00") {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestNewNotifierSelection(t *testing.T) {
	notifier := newNotifier(notifierParams{Config: &config.Config{}})
	if _, ok := notifier.(NopNotifier); !ok {
		t.Fatalf("expected nop notifier without smtp host, got %T", notifier)
	}

	notifier = newNotifier(notifierParams{Config: &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}})
	if _, ok := notifier.(*SMTPNotifier); !ok {
		t.Fatalf("expected smtp notifier, got %T", notifier)
	}
}

func TestNopNotifier(t *testing.T) {
	n := NopNotifier{}
	if err := n.SendOrderConfirmation(&model.Order{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.SendAdminNotification(&model.Order{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.SendContactNotification(&model.Contact{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
