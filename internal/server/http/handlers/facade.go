package handlers

import (
	"context"

	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	RegisterAdmin(ctx context.Context, name, email, password string) (*model.Admin, string, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (*model.Admin, string, error)
	ParseToken(token string) (int64, error)
	Admin(ctx context.Context, id int64) (*model.Admin, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Artworks(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error)
	Artwork(ctx context.Context, id int64) (*model.Artwork, error)
	CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	UpdateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) error
}

// FulfillmentFacade covers order placement, payment and status management.
type FulfillmentFacade interface {
	PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error)
	CreatePaymentOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, *razorpay.ChargeHandle, error)
	VerifyPayment(ctx context.Context, callback usecase.VerificationCallback) (*model.Order, error)
	GatewayKeyID() string
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error)
}

// ContactFacade provides contact form operations.
type ContactFacade interface {
	SubmitContact(ctx context.Context, name, email, message string) (*model.Contact, error)
	ContactMessages(ctx context.Context, status model.ContactStatus) ([]model.Contact, error)
	ContactMessage(ctx context.Context, id int64) (*model.Contact, error)
	UpdateContactStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error)
}

// DashboardFacade provides admin overview aggregates.
type DashboardFacade interface {
	Dashboard(ctx context.Context) (*usecase.Dashboard, error)
	Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	FulfillmentFacade
	ContactFacade
	DashboardFacade
}
