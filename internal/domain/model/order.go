package model

import "time"

// PaymentStatus describes the money side of an order lifecycle.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CanTransitionTo reports whether a payment status change is allowed.
// Permitted: pending->paid, pending->failed, paid->refunded.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusPaid || next == PaymentStatusFailed
	case PaymentStatusPaid:
		return next == PaymentStatusRefunded
	default:
		return false
	}
}

// OrderStatus describes the operational lifecycle, independent of payment.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ShippingStatus reflects the shipment booking outcome. Advisory only: it is
// never a reason to block or reverse a payment transition.
type ShippingStatus string

const (
	ShippingStatusUnset   ShippingStatus = ""
	ShippingStatusCreated ShippingStatus = "created"
	ShippingStatusFailed  ShippingStatus = "failed"
)

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodRazorpay     PaymentMethod = "razorpay"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

// OrderItem is a line within an order. Title and unit price are snapshotted
// from the artwork at creation time and stay immutable afterwards.
type OrderItem struct {
	ArtworkID int64
	Title     string
	Quantity  int
	Price     float64
}

// Address holds the shipping destination of an order.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Order is the aggregate root of the fulfillment core.
type Order struct {
	ID            string
	Items         []OrderItem
	CustomerName  string
	CustomerEmail string
	Phone         string
	Address       Address
	TotalAmount   float64
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	// PaymentReference holds the gateway payment identifier, set on the
	// pending->paid transition.
	PaymentReference string
	// GatewayOrderID holds the gateway charge handle, set once a handle exists.
	GatewayOrderID string
	OrderStatus    OrderStatus
	ShippingStatus ShippingStatus
	ShipmentID     string
	TrackingNumber string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderLine identifies a requested quantity of one artwork, used by the
// inventory ledger for availability checks and decrements.
type OrderLine struct {
	ArtworkID int64
	Quantity  int
}

// Lines projects order items into inventory ledger lines.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, OrderLine{ArtworkID: item.ArtworkID, Quantity: item.Quantity})
	}
	return lines
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	Limit         int
}
