package dto

import (
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// OrderItemPayload is one requested line in an order creation request.
// Price and title supplied by the client are ignored; the server snapshots
// both from the catalog.
type OrderItemPayload struct {
	ArtworkID int64 `json:"artworkId"`
	Quantity  int   `json:"quantity"`
}

// AddressPayload is the shipping address of an order creation request.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderPayload is the body of POST /api/orders.
type OrderPayload struct {
	Items         []OrderItemPayload `json:"items"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Phone         string             `json:"phone"`
	Address       AddressPayload     `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes"`
	// TotalAmount is accepted for backwards compatibility and discarded; the
	// server always recomputes it.
	TotalAmount float64 `json:"totalAmount"`
}

// CreatePaymentOrderRequest is the body of POST /api/payment/create-order.
type CreatePaymentOrderRequest struct {
	OrderData OrderPayload `json:"orderData"`
}

// VerifyPaymentRequest is the gateway callback body of
// POST /api/payment/verify-payment.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}

// UpdateOrderStatusRequest is the admin body of PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	OrderStatus    string `json:"orderStatus"`
	PaymentStatus  string `json:"paymentStatus"`
	TrackingNumber string `json:"trackingNumber"`
}

// OrderItemResponse mirrors a stored order line.
type OrderItemResponse struct {
	ArtworkID int64   `json:"artworkId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResponse mirrors a stored order.
type OrderResponse struct {
	ID               string              `json:"id"`
	Items            []OrderItemResponse `json:"items"`
	CustomerName     string              `json:"customerName"`
	CustomerEmail    string              `json:"customerEmail"`
	Phone            string              `json:"phone"`
	Address          AddressPayload      `json:"address"`
	TotalAmount      float64             `json:"totalAmount"`
	PaymentStatus    string              `json:"paymentStatus"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentReference string              `json:"paymentReference,omitempty"`
	GatewayOrderID   string              `json:"gatewayOrderId,omitempty"`
	OrderStatus      string              `json:"orderStatus"`
	ShippingStatus   string              `json:"shippingStatus,omitempty"`
	ShipmentID       string              `json:"shipmentId,omitempty"`
	TrackingNumber   string              `json:"trackingNumber,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// ChargeHandleResponse is the gateway handle returned to the checkout page.
type ChargeHandleResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreatePaymentOrderResponse is the payload of a successful create-order call.
type CreatePaymentOrderResponse struct {
	RazorpayOrder ChargeHandleResponse `json:"razorpayOrder"`
	OrderID       string               `json:"orderId"`
	Key           string               `json:"key"`
}

// ToDraft converts the payload into the use case input.
func (p OrderPayload) ToDraft() usecase.OrderDraft {
	draft := usecase.OrderDraft{
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		Phone:         p.Phone,
		Address: model.Address{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
			Country: p.Address.Country,
		},
		PaymentMethod: model.PaymentMethod(p.PaymentMethod),
		Notes:         p.Notes,
	}
	for _, item := range p.Items {
		draft.Items = append(draft.Items, usecase.DraftItem{ArtworkID: item.ArtworkID, Quantity: item.Quantity})
	}
	return draft
}

// FromOrder builds the response view of an order.
func FromOrder(order *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ArtworkID: item.ArtworkID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return OrderResponse{
		ID:               order.ID,
		Items:            items,
		CustomerName:     order.CustomerName,
		CustomerEmail:    order.CustomerEmail,
		Phone:            order.Phone,
		Address: AddressPayload{
			Street:  order.Address.Street,
			City:    order.Address.City,
			State:   order.Address.State,
			ZipCode: order.Address.ZipCode,
			Country: order.Address.Country,
		},
		TotalAmount:      order.TotalAmount,
		PaymentStatus:    string(order.PaymentStatus),
		PaymentMethod:    string(order.PaymentMethod),
		PaymentReference: order.PaymentReference,
		GatewayOrderID:   order.GatewayOrderID,
		OrderStatus:      string(order.OrderStatus),
		ShippingStatus:   string(order.ShippingStatus),
		ShipmentID:       order.ShipmentID,
		TrackingNumber:   order.TrackingNumber,
		Notes:            order.Notes,
		CreatedAt:        order.CreatedAt,
	}
}
