package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/inkandimagination/artstore/internal/adapter/mailer"
	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/adapter/shiprocket"
	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

// DraftItem is one requested line of a new order. Price and title are never
// taken from the client; they are snapshotted from the catalog.
type DraftItem struct {
	ArtworkID int64
	Quantity  int
}

// OrderDraft is the client-supplied input for order creation.
type OrderDraft struct {
	Items         []DraftItem
	CustomerName  string
	CustomerEmail string
	Phone         string
	Address       model.Address
	PaymentMethod model.PaymentMethod
	Notes         string
}

// VerificationCallback carries the gateway identifiers and signature of an
// inbound payment verification call.
type VerificationCallback struct {
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// FulfillmentUseCase drives the order payment-and-fulfillment state machine:
// stock check, pending persist, charge handle, signature-gated paid
// transition, inventory decrement and best-effort follow-through.
type FulfillmentUseCase struct {
	orders   repository.OrderRepository
	artworks repository.ArtworkRepository
	gateway  razorpay.Client
	shipper  shiprocket.Client
	notifier mailer.Notifier
	currency string
	logger   *slog.Logger
}

// NewFulfillmentUseCase constructs FulfillmentUseCase.
func NewFulfillmentUseCase(
	orders repository.OrderRepository,
	artworks repository.ArtworkRepository,
	gateway razorpay.Client,
	shipper shiprocket.Client,
	notifier mailer.Notifier,
	currency string,
	logger *slog.Logger,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		orders:   orders,
		artworks: artworks,
		gateway:  gateway,
		shipper:  shipper,
		notifier: notifier,
		currency: currency,
		logger:   logger,
	}
}

// MinorUnits converts a display amount into integer minor currency units.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PlaceOrder validates the draft, pre-checks stock and persists a pending
// order. No inventory is decremented here; that happens only on the
// pending->paid transition.
func (u *FulfillmentUseCase) PlaceOrder(ctx context.Context, draft OrderDraft) (*model.Order, error) {
	if err := ValidateOrderDraft(draft); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(draft.Items))
	for _, item := range draft.Items {
		ids = append(ids, item.ArtworkID)
	}
	artworks, err := u.artworks.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load artworks: %w", err)
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		Phone:         draft.Phone,
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
		PaymentStatus: model.PaymentStatusPending,
		OrderStatus:   model.OrderStatusProcessing,
		Notes:         draft.Notes,
	}
	if order.Address.Country == "" {
		order.Address.Country = "USA"
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = model.PaymentMethodRazorpay
	}

	// Totals are computed here from catalog prices; any client-supplied
	// amount is ignored.
	for _, item := range draft.Items {
		artwork, ok := artworks[item.ArtworkID]
		if !ok {
			return nil, domainErrors.InsufficientStockError{ArtworkID: item.ArtworkID}
		}
		order.Items = append(order.Items, model.OrderItem{
			ArtworkID: artwork.ID,
			Title:     artwork.Title,
			Quantity:  item.Quantity,
			Price:     artwork.Price,
		})
		order.TotalAmount += artwork.Price * float64(item.Quantity)
	}

	// Advisory pre-flight check: fail fast before any persistence. The
	// authoritative check is the conditional decrement at commit time.
	if err := u.artworks.CheckAvailability(ctx, order.Lines()); err != nil {
		return nil, err
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return created, nil
}

// CreatePaymentOrder persists a pending order and obtains a gateway charge
// handle keyed by the order id. If the gateway call fails, the persisted
// order stays pending and discoverable; it is not rolled back.
func (u *FulfillmentUseCase) CreatePaymentOrder(ctx context.Context, draft OrderDraft) (*model.Order, *razorpay.ChargeHandle, error) {
	draft.PaymentMethod = model.PaymentMethodRazorpay
	order, err := u.PlaceOrder(ctx, draft)
	if err != nil {
		return nil, nil, err
	}

	handle, err := u.gateway.CreateOrder(ctx, MinorUnits(order.TotalAmount), u.currency, order.ID)
	if err != nil {
		u.logger.Error("charge handle creation failed, order left pending",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return order, nil, err
	}

	if err := u.orders.SetChargeHandle(ctx, order.ID, handle.ID); err != nil {
		u.logger.Error("record charge handle failed",
			slog.String("order_id", order.ID),
			slog.String("gateway_order_id", handle.ID),
			slog.String("error", err.Error()),
		)
	}
	order.GatewayOrderID = handle.ID
	return order, handle, nil
}

// GatewayKeyID exposes the gateway's publishable key for checkout clients.
func (u *FulfillmentUseCase) GatewayKeyID() string {
	return u.gateway.KeyID()
}

// VerifyPayment handles an inbound payment verification callback.
//
// The signature predicate gates everything: a mismatch is rejected with no
// state change. After the conditional pending->paid flip commits, inventory
// decrement and the side-effect list run; their failures are recorded but
// never contradict the paid status.
func (u *FulfillmentUseCase) VerifyPayment(ctx context.Context, callback VerificationCallback) (*model.Order, error) {
	if !u.gateway.VerifySignature(callback.GatewayOrderID, callback.GatewayPaymentID, callback.Signature) {
		u.logger.Warn("payment signature mismatch",
			slog.String("order_id", callback.OrderID),
			slog.String("gateway_order_id", callback.GatewayOrderID),
		)
		return nil, domainErrors.ErrInvalidSignature
	}

	order, err := u.orders.GetByID(ctx, callback.OrderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != model.PaymentStatusPending {
		if order.PaymentStatus == model.PaymentStatusPaid && order.PaymentReference == callback.GatewayPaymentID {
			// Duplicate callback for an already settled payment.
			return order, nil
		}
		return nil, domainErrors.ErrInvalidTransition
	}

	if order.GatewayOrderID != "" && order.GatewayOrderID != callback.GatewayOrderID {
		u.logger.Warn("callback gateway order id differs from recorded charge handle",
			slog.String("order_id", order.ID),
			slog.String("recorded", order.GatewayOrderID),
			slog.String("received", callback.GatewayOrderID),
		)
	}

	// Second stock check. The money is already authorized, so a shortfall
	// here is an operator problem, not a reason to refuse the payment.
	if err := u.artworks.CheckAvailability(ctx, order.Lines()); err != nil {
		u.logger.Error("reconciliation required: stock shortfall at verification",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	updated, err := u.orders.UpdatePaymentOutcome(ctx, order.ID, model.PaymentStatusPaid, callback.GatewayPaymentID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidTransition) && updated != nil &&
			updated.PaymentStatus == model.PaymentStatusPaid && updated.PaymentReference == callback.GatewayPaymentID {
			// Lost the race against a concurrent identical callback.
			return updated, nil
		}
		return nil, err
	}

	// Decrement commits after the payment flip: the paid record is the
	// authoritative fact, and a decrement failure is an inconsistency to
	// reconcile, not a payment reversal.
	if err := u.artworks.DecrementStock(ctx, updated.Lines()); err != nil {
		u.logger.Error("reconciliation required: inventory decrement failed after payment",
			slog.String("order_id", updated.ID),
			slog.String("error", err.Error()),
		)
	}

	u.runSideEffects(ctx, updated)
	return updated, nil
}

// sideEffect is one independent best-effort operation executed after the
// paid transition. No effect may throw past its own boundary.
type sideEffect struct {
	name string
	run  func(ctx context.Context) error
}

func (u *FulfillmentUseCase) runSideEffects(ctx context.Context, order *model.Order) {
	effects := []sideEffect{
		{name: "customer confirmation email", run: func(context.Context) error {
			return u.notifier.SendOrderConfirmation(order)
		}},
		{name: "admin notification email", run: func(context.Context) error {
			return u.notifier.SendAdminNotification(order)
		}},
		{name: "shipment booking", run: func(ctx context.Context) error {
			return u.bookShipment(ctx, order)
		}},
	}

	for _, effect := range effects {
		if err := effect.run(ctx); err != nil {
			u.logger.Error("post-payment side effect failed",
				slog.String("order_id", order.ID),
				slog.String("effect", effect.name),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (u *FulfillmentUseCase) bookShipment(ctx context.Context, order *model.Order) error {
	ids := make([]int64, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ArtworkID)
	}

	artworks, err := u.artworks.GetByIDs(ctx, ids)
	if err == nil {
		var booking *shiprocket.Booking
		booking, err = u.shipper.CreateShipment(ctx, order, artworks)
		if err == nil {
			if _, recordErr := u.orders.UpdateShippingOutcome(ctx, order.ID, model.ShippingStatusCreated, booking.ShipmentID, booking.OrderID); recordErr != nil {
				return fmt.Errorf("record shipping outcome: %w", recordErr)
			}
			return nil
		}
	}

	if _, recordErr := u.orders.UpdateShippingOutcome(ctx, order.ID, model.ShippingStatusFailed, "", ""); recordErr != nil {
		u.logger.Error("record failed shipping outcome",
			slog.String("order_id", order.ID),
			slog.String("error", recordErr.Error()),
		)
	}
	return err
}

// RetryShipment re-attempts booking for a paid order whose shipment failed.
// Used by the background retry worker.
func (u *FulfillmentUseCase) RetryShipment(ctx context.Context, order *model.Order) error {
	return u.bookShipment(ctx, order)
}

// Order returns a single order by id.
func (u *FulfillmentUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Orders lists orders for the admin view.
func (u *FulfillmentUseCase) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// UpdateOrderStatus applies admin lifecycle edits. Payment status changes
// still pass the transition whitelist enforced by the store.
func (u *FulfillmentUseCase) UpdateOrderStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error) {
	if orderStatus != "" && !model.ValidOrderStatus(orderStatus) {
		return nil, domainErrors.NewValidationError(map[string]string{"orderStatus": "unknown order status"})
	}
	return u.orders.UpdateStatus(ctx, id, orderStatus, paymentStatus, trackingNumber)
}

// ShipmentRetries claims a batch of paid orders with failed shipments.
func (u *FulfillmentUseCase) ShipmentRetries(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectShipmentRetries(ctx, limit)
}
