// Package facade provides stub implementations of the handler facade
// interfaces. It sits below internal/test so the usecase packages can keep
// using internal/test without importing their own consumers.
package facade

import (
	"context"
	"time"

	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.Admin, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.Admin, string, error)
	ParseTokenFn   func(string) (int64, error)
	AdminFn        func(context.Context, int64) (*model.Admin, error)
}

// RegisterAdmin delegates to provided function or returns default admin.
func (s AuthFacadeStub) RegisterAdmin(ctx context.Context, name, email, password string) (*model.Admin, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.Admin{ID: 1, Name: name, Email: email}, "session-token", nil
}

// AuthenticateAdmin delegates to provided function or returns default admin.
func (s AuthFacadeStub) AuthenticateAdmin(ctx context.Context, email, password string) (*model.Admin, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.Admin{ID: 1, Email: email}, "session-token", nil
}

// ParseToken delegates to provided function or accepts any token as admin 1.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// Admin returns configured admin record.
func (s AuthFacadeStub) Admin(ctx context.Context, id int64) (*model.Admin, error) {
	if s.AdminFn != nil {
		return s.AdminFn(ctx, id)
	}
	return &model.Admin{ID: id, Name: "Admin", Email: "admin@example.com"}, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ArtworksFn func(context.Context, model.ArtworkFilter) ([]model.Artwork, error)
	ArtworkFn  func(context.Context, int64) (*model.Artwork, error)
	CreateFn   func(context.Context, *model.Artwork) (*model.Artwork, error)
	UpdateFn   func(context.Context, *model.Artwork) (*model.Artwork, error)
	DeleteFn   func(context.Context, int64) error
}

// Artworks returns configured listing.
func (s CatalogFacadeStub) Artworks(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	if s.ArtworksFn != nil {
		return s.ArtworksFn(ctx, filter)
	}
	return []model.Artwork{{ID: 1, Title: "Harbor Dusk"}}, nil
}

// Artwork returns configured record.
func (s CatalogFacadeStub) Artwork(ctx context.Context, id int64) (*model.Artwork, error) {
	if s.ArtworkFn != nil {
		return s.ArtworkFn(ctx, id)
	}
	return &model.Artwork{ID: id, Title: "Harbor Dusk"}, nil
}

// CreateArtwork executes configured handler.
func (s CatalogFacadeStub) CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, artwork)
	}
	created := *artwork
	created.ID = 1
	return &created, nil
}

// UpdateArtwork executes configured handler.
func (s CatalogFacadeStub) UpdateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, artwork)
	}
	return artwork, nil
}

// DeleteArtwork executes configured handler.
func (s CatalogFacadeStub) DeleteArtwork(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// FulfillmentFacadeStub simulates order and payment operations.
type FulfillmentFacadeStub struct {
	PlaceFn        func(context.Context, usecase.OrderDraft) (*model.Order, error)
	CreateChargeFn func(context.Context, usecase.OrderDraft) (*model.Order, *razorpay.ChargeHandle, error)
	VerifyFn       func(context.Context, usecase.VerificationCallback) (*model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, model.PaymentStatus, string) (*model.Order, error)
	KeyIDFn        func() string
}

// PlaceOrder delegates to provided function or returns a pending order.
func (s FulfillmentFacadeStub) PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	return &model.Order{ID: "order-1", PaymentStatus: model.PaymentStatusPending}, nil
}

// CreatePaymentOrder delegates to provided function or returns default handle.
func (s FulfillmentFacadeStub) CreatePaymentOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, *razorpay.ChargeHandle, error) {
	if s.CreateChargeFn != nil {
		return s.CreateChargeFn(ctx, draft)
	}
	order := &model.Order{ID: "order-1", PaymentStatus: model.PaymentStatusPending}
	return order, &razorpay.ChargeHandle{ID: "order_stub", Amount: 30100, Currency: "INR", Status: "created"}, nil
}

// VerifyPayment delegates to provided function or returns a paid order.
func (s FulfillmentFacadeStub) VerifyPayment(ctx context.Context, callback usecase.VerificationCallback) (*model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, callback)
	}
	return &model.Order{ID: callback.OrderID, PaymentStatus: model.PaymentStatusPaid}, nil
}

// Order returns configured record.
func (s FulfillmentFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id}, nil
}

// Orders returns configured listing.
func (s FulfillmentFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: "order-1"}}, nil
}

// UpdateOrderStatus executes configured handler.
func (s FulfillmentFacadeStub) UpdateOrderStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, orderStatus, paymentStatus, trackingNumber)
	}
	return &model.Order{ID: id, OrderStatus: orderStatus, TrackingNumber: trackingNumber}, nil
}

// GatewayKeyID returns the configured publishable key.
func (s FulfillmentFacadeStub) GatewayKeyID() string {
	if s.KeyIDFn != nil {
		return s.KeyIDFn()
	}
	return "rzp_test_stub"
}

// ContactFacadeStub simulates contact form operations.
type ContactFacadeStub struct {
	SubmitFn       func(context.Context, string, string, string) (*model.Contact, error)
	MessagesFn     func(context.Context, model.ContactStatus) ([]model.Contact, error)
	MessageFn      func(context.Context, int64) (*model.Contact, error)
	UpdateStatusFn func(context.Context, int64, model.ContactStatus, *bool) (*model.Contact, error)
}

// SubmitContact delegates to provided function or echoes the submission.
func (s ContactFacadeStub) SubmitContact(ctx context.Context, name, email, message string) (*model.Contact, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, message)
	}
	return &model.Contact{ID: 1, Name: name, Email: email, Message: message, Status: model.ContactStatusNew}, nil
}

// ContactMessages returns configured listing.
func (s ContactFacadeStub) ContactMessages(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	if s.MessagesFn != nil {
		return s.MessagesFn(ctx, status)
	}
	return []model.Contact{{ID: 1, Name: "A Visitor"}}, nil
}

// ContactMessage returns configured record.
func (s ContactFacadeStub) ContactMessage(ctx context.Context, id int64) (*model.Contact, error) {
	if s.MessageFn != nil {
		return s.MessageFn(ctx, id)
	}
	return &model.Contact{ID: id, Status: model.ContactStatusRead}, nil
}

// UpdateContactStatus executes configured handler.
func (s ContactFacadeStub) UpdateContactStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, replied)
	}
	return &model.Contact{ID: id, Status: status}, nil
}

// DashboardFacadeStub simulates admin overview aggregates.
type DashboardFacadeStub struct {
	DashboardFn func(context.Context) (*usecase.Dashboard, error)
	ActivityFn  func(context.Context, int) ([]model.ActivityEntry, error)
}

// Dashboard returns configured aggregate.
func (s DashboardFacadeStub) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &usecase.Dashboard{Overview: model.DashboardOverview{TotalOrders: 1}}, nil
}

// Activity returns configured feed.
func (s DashboardFacadeStub) Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if s.ActivityFn != nil {
		return s.ActivityFn(ctx, limit)
	}
	return []model.ActivityEntry{{Type: "order", OrderID: "order-1", Timestamp: time.Unix(0, 0)}}, nil
}

// StoreFacadeStub aggregates per-concern stubs into the full handler surface.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	FulfillmentFacadeStub
	ContactFacadeStub
	DashboardFacadeStub
}
