package test

import (
	"context"

	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/adapter/shiprocket"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	CreateOrderFn     func(context.Context, int64, string, string) (*razorpay.ChargeHandle, error)
	VerifySignatureFn func(string, string, string) bool
	Key               string

	CreatedAmounts []int64
}

// CreateOrder returns a configured or default charge handle.
func (s *GatewayStub) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.ChargeHandle, error) {
	s.CreatedAmounts = append(s.CreatedAmounts, amount)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amount, currency, receipt)
	}
	return &razorpay.ChargeHandle{ID: "order_stub", Amount: amount, Currency: currency, Status: "created"}, nil
}

// VerifySignature accepts everything unless overridden.
func (s *GatewayStub) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if s.VerifySignatureFn != nil {
		return s.VerifySignatureFn(gatewayOrderID, gatewayPaymentID, signature)
	}
	return true
}

// KeyID returns the configured publishable key.
func (s *GatewayStub) KeyID() string {
	if s.Key != "" {
		return s.Key
	}
	return "rzp_test_stub"
}

// ShipperStub simulates the logistics gateway client.
type ShipperStub struct {
	CreateShipmentFn func(context.Context, *model.Order, map[int64]*model.Artwork) (*shiprocket.Booking, error)

	Bookings []string
}

// CreateShipment returns a configured or default booking.
func (s *ShipperStub) CreateShipment(ctx context.Context, order *model.Order, artworks map[int64]*model.Artwork) (*shiprocket.Booking, error) {
	s.Bookings = append(s.Bookings, order.ID)
	if s.CreateShipmentFn != nil {
		return s.CreateShipmentFn(ctx, order, artworks)
	}
	return &shiprocket.Booking{OrderID: "sr_order_stub", ShipmentID: "sr_shipment_stub"}, nil
}

// NotifierStub records notification deliveries.
type NotifierStub struct {
	ConfirmErr error
	AdminErr   error
	ContactErr error

	Confirmations      []string
	AdminNotifications []string
	ContactNotices     []int64
}

// SendOrderConfirmation records the order and returns the configured error.
func (s *NotifierStub) SendOrderConfirmation(order *model.Order) error {
	s.Confirmations = append(s.Confirmations, order.ID)
	return s.ConfirmErr
}

// SendAdminNotification records the order and returns the configured error.
func (s *NotifierStub) SendAdminNotification(order *model.Order) error {
	s.AdminNotifications = append(s.AdminNotifications, order.ID)
	return s.AdminErr
}

// SendContactNotification records the contact and returns the configured error.
func (s *NotifierStub) SendContactNotification(contact *model.Contact) error {
	s.ContactNotices = append(s.ContactNotices, contact.ID)
	return s.ContactErr
}
