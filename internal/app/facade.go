package app

import (
	"context"

	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// StoreFacade aggregates the application use cases behind one surface used by
// HTTP handlers, middleware and the shipment retry worker.
type StoreFacade struct {
	auth        *usecase.AuthUseCase
	catalog     *usecase.CatalogUseCase
	fulfillment *usecase.FulfillmentUseCase
	contact     *usecase.ContactUseCase
	dashboard   *usecase.DashboardUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	fulfillment *usecase.FulfillmentUseCase,
	contact *usecase.ContactUseCase,
	dashboard *usecase.DashboardUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:        auth,
		catalog:     catalog,
		fulfillment: fulfillment,
		contact:     contact,
		dashboard:   dashboard,
	}
}

// --- admin auth ---

func (f *StoreFacade) RegisterAdmin(ctx context.Context, name, email, password string) (*model.Admin, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) AuthenticateAdmin(ctx context.Context, email, password string) (*model.Admin, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Admin(ctx context.Context, id int64) (*model.Admin, error) {
	return f.auth.Admin(ctx, id)
}

// --- catalog ---

func (f *StoreFacade) Artworks(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	return f.catalog.List(ctx, filter)
}

func (f *StoreFacade) Artwork(ctx context.Context, id int64) (*model.Artwork, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StoreFacade) CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	return f.catalog.Create(ctx, artwork)
}

func (f *StoreFacade) UpdateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	return f.catalog.Update(ctx, artwork)
}

func (f *StoreFacade) DeleteArtwork(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

// --- orders & payment ---

func (f *StoreFacade) PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error) {
	return f.fulfillment.PlaceOrder(ctx, draft)
}

func (f *StoreFacade) CreatePaymentOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, *razorpay.ChargeHandle, error) {
	return f.fulfillment.CreatePaymentOrder(ctx, draft)
}

func (f *StoreFacade) VerifyPayment(ctx context.Context, callback usecase.VerificationCallback) (*model.Order, error) {
	return f.fulfillment.VerifyPayment(ctx, callback)
}

func (f *StoreFacade) GatewayKeyID() string {
	return f.fulfillment.GatewayKeyID()
}

func (f *StoreFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.fulfillment.Order(ctx, id)
}

func (f *StoreFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.fulfillment.Orders(ctx, filter)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error) {
	return f.fulfillment.UpdateOrderStatus(ctx, id, orderStatus, paymentStatus, trackingNumber)
}

// --- shipment retries (worker) ---

func (f *StoreFacade) ShipmentRetries(ctx context.Context, limit int) ([]model.Order, error) {
	return f.fulfillment.ShipmentRetries(ctx, limit)
}

func (f *StoreFacade) RetryShipment(ctx context.Context, order *model.Order) error {
	return f.fulfillment.RetryShipment(ctx, order)
}

// --- contact ---

func (f *StoreFacade) SubmitContact(ctx context.Context, name, email, message string) (*model.Contact, error) {
	return f.contact.Submit(ctx, name, email, message)
}

func (f *StoreFacade) ContactMessages(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	return f.contact.List(ctx, status)
}

func (f *StoreFacade) ContactMessage(ctx context.Context, id int64) (*model.Contact, error) {
	return f.contact.Get(ctx, id)
}

func (f *StoreFacade) UpdateContactStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error) {
	return f.contact.UpdateStatus(ctx, id, status, replied)
}

// --- dashboard ---

func (f *StoreFacade) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	return f.dashboard.Overview(ctx)
}

func (f *StoreFacade) Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	return f.dashboard.Activity(ctx, limit)
}
