package repository

import (
	"context"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// OrderRepository describes persistence operations on order records.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)

	// SetChargeHandle records the gateway charge identifier on a pending order.
	SetChargeHandle(ctx context.Context, id, gatewayOrderID string) error

	// UpdatePaymentOutcome applies the payment transition as a single
	// conditional update guarded by the current status being pending. A
	// duplicate or out-of-order application fails with ErrInvalidTransition
	// instead of silently overwriting.
	UpdatePaymentOutcome(ctx context.Context, id string, status model.PaymentStatus, reference string) (*model.Order, error)

	// UpdateShippingOutcome records the shipment booking result. Unconditional
	// and independent of the payment transition ordering.
	UpdateShippingOutcome(ctx context.Context, id string, status model.ShippingStatus, shipmentID, trackingNumber string) (*model.Order, error)

	// UpdateStatus applies admin edits to lifecycle fields. Payment status
	// changes still pass the transition whitelist.
	UpdateStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error)

	// SelectShipmentRetries claims paid orders whose shipment booking failed,
	// marking them in-flight so concurrent workers never double-book.
	SelectShipmentRetries(ctx context.Context, limit int) ([]model.Order, error)

	Count(ctx context.Context) (int64, error)
	CountByOrderStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]model.Order, error)
}
