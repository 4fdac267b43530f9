package test

import (
	"context"
	"sync"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

// ArtworkRepositoryStub stores artworks in-memory for tests.
type ArtworkRepositoryStub struct {
	Items map[int64]*model.Artwork
	Next  int64
	Err   error

	CheckAvailabilityFn func(context.Context, []model.OrderLine) error
	DecrementStockFn    func(context.Context, []model.OrderLine) error

	mu         sync.Mutex
	Decrements [][]model.OrderLine
}

// NewArtworkRepositoryStub constructs stub repository with initialized maps.
func NewArtworkRepositoryStub(artworks ...*model.Artwork) *ArtworkRepositoryStub {
	s := &ArtworkRepositoryStub{Items: make(map[int64]*model.Artwork), Next: 1}
	for _, a := range artworks {
		if a.ID >= s.Next {
			s.Next = a.ID + 1
		}
		s.Items[a.ID] = a
	}
	return s
}

// Create stores the artwork under the next identifier.
func (s *ArtworkRepositoryStub) Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *artwork
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches artwork by identifier or returns not found.
func (s *ArtworkRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Artwork, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.Items[id]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByIDs fetches the subset of stored artworks matching ids.
func (s *ArtworkRepositoryStub) GetByIDs(ctx context.Context, ids []int64) (map[int64]*model.Artwork, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make(map[int64]*model.Artwork, len(ids))
	for _, id := range ids {
		if a, ok := s.Items[id]; ok {
			result[id] = a
		}
	}
	return result, nil
}

// List returns all stored artworks ignoring the filter.
func (s *ArtworkRepositoryStub) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Artwork, 0, len(s.Items))
	for _, a := range s.Items {
		result = append(result, *a)
	}
	return result, nil
}

// Update replaces a stored artwork.
func (s *ArtworkRepositoryStub) Update(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[artwork.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *artwork
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// Delete removes a stored artwork.
func (s *ArtworkRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// LowStock returns artworks at or below threshold.
func (s *ArtworkRepositoryStub) LowStock(ctx context.Context, threshold, limit int) ([]model.Artwork, error) {
	result := make([]model.Artwork, 0)
	for _, a := range s.Items {
		if a.Stock <= threshold {
			result = append(result, *a)
		}
	}
	return result, nil
}

// CategoryCounts buckets stored artworks by category.
func (s *ArtworkRepositoryStub) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	counts := make(map[string]int64)
	for _, a := range s.Items {
		counts[a.Category]++
	}
	result := make([]model.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, model.CategoryCount{Category: category, Count: count})
	}
	return result, nil
}

// Count reports the number of stored artworks.
func (s *ArtworkRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Items)), nil
}

// CheckAvailability validates lines against in-memory stock.
func (s *ArtworkRepositoryStub) CheckAvailability(ctx context.Context, lines []model.OrderLine) error {
	if s.CheckAvailabilityFn != nil {
		return s.CheckAvailabilityFn(ctx, lines)
	}
	for _, line := range lines {
		a, ok := s.Items[line.ArtworkID]
		if !ok || a.Stock < line.Quantity {
			return domainErrors.InsufficientStockError{ArtworkID: line.ArtworkID}
		}
	}
	return nil
}

// DecrementStock applies lines to in-memory stock and records the call.
func (s *ArtworkRepositoryStub) DecrementStock(ctx context.Context, lines []model.OrderLine) error {
	if s.DecrementStockFn != nil {
		return s.DecrementStockFn(ctx, lines)
	}
	for _, line := range lines {
		a, ok := s.Items[line.ArtworkID]
		if !ok || a.Stock < line.Quantity {
			return domainErrors.InsufficientStockError{ArtworkID: line.ArtworkID}
		}
	}
	for _, line := range lines {
		s.Items[line.ArtworkID].Stock -= line.Quantity
	}
	s.mu.Lock()
	s.Decrements = append(s.Decrements, lines)
	s.mu.Unlock()
	return nil
}

// OrderRepositoryStub stores orders in-memory and lets tests customize
// behaviour per call.
type OrderRepositoryStub struct {
	Items map[string]*model.Order
	Err   error

	CreateFn               func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn              func(context.Context, string) (*model.Order, error)
	UpdatePaymentOutcomeFn func(context.Context, string, model.PaymentStatus, string) (*model.Order, error)
	SelectRetriesFn        func(context.Context, int) ([]model.Order, error)

	ChargeHandles   []string
	ShippingUpdates []ShippingUpdateCall
	StatusUpdates   []StatusUpdateCall
}

// ShippingUpdateCall records one UpdateShippingOutcome invocation.
type ShippingUpdateCall struct {
	OrderID        string
	Status         model.ShippingStatus
	ShipmentID     string
	TrackingNumber string
}

// StatusUpdateCall records one UpdateStatus invocation.
type StatusUpdateCall struct {
	OrderID        string
	OrderStatus    model.OrderStatus
	PaymentStatus  model.PaymentStatus
	TrackingNumber string
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Items: make(map[string]*model.Order)}
}

// Create stores the order keyed by its identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *order
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Items[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders ignoring the filter.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Order, 0, len(s.Items))
	for _, o := range s.Items {
		result = append(result, *o)
	}
	return result, nil
}

// SetChargeHandle records the gateway order identifier.
func (s *OrderRepositoryStub) SetChargeHandle(ctx context.Context, id, gatewayOrderID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.ChargeHandles = append(s.ChargeHandles, gatewayOrderID)
	if o, ok := s.Items[id]; ok {
		o.GatewayOrderID = gatewayOrderID
	}
	return nil
}

// UpdatePaymentOutcome flips a pending order or reports an invalid transition.
func (s *OrderRepositoryStub) UpdatePaymentOutcome(ctx context.Context, id string, status model.PaymentStatus, reference string) (*model.Order, error) {
	if s.UpdatePaymentOutcomeFn != nil {
		return s.UpdatePaymentOutcomeFn(ctx, id, status, reference)
	}
	o, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.PaymentStatus != model.PaymentStatusPending {
		copied := *o
		return &copied, domainErrors.ErrInvalidTransition
	}
	o.PaymentStatus = status
	o.PaymentReference = reference
	copied := *o
	return &copied, nil
}

// UpdateShippingOutcome records the booking result.
func (s *OrderRepositoryStub) UpdateShippingOutcome(ctx context.Context, id string, status model.ShippingStatus, shipmentID, trackingNumber string) (*model.Order, error) {
	s.ShippingUpdates = append(s.ShippingUpdates, ShippingUpdateCall{
		OrderID:        id,
		Status:         status,
		ShipmentID:     shipmentID,
		TrackingNumber: trackingNumber,
	})
	o, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.ShippingStatus = status
	o.ShipmentID = shipmentID
	o.TrackingNumber = trackingNumber
	copied := *o
	return &copied, nil
}

// UpdateStatus records admin lifecycle edits.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error) {
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{
		OrderID:        id,
		OrderStatus:    orderStatus,
		PaymentStatus:  paymentStatus,
		TrackingNumber: trackingNumber,
	})
	o, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if orderStatus != "" {
		o.OrderStatus = orderStatus
	}
	if paymentStatus != "" {
		if !o.PaymentStatus.CanTransitionTo(paymentStatus) {
			return nil, domainErrors.ErrInvalidTransition
		}
		o.PaymentStatus = paymentStatus
	}
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	copied := *o
	return &copied, nil
}

// SelectShipmentRetries returns configured retry batches.
func (s *OrderRepositoryStub) SelectShipmentRetries(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectRetriesFn != nil {
		return s.SelectRetriesFn(ctx, limit)
	}
	return nil, nil
}

// Count reports the number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Items)), nil
}

// CountByOrderStatus reports orders matching the lifecycle status.
func (s *OrderRepositoryStub) CountByOrderStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var count int64
	for _, o := range s.Items {
		if o.OrderStatus == status {
			count++
		}
	}
	return count, nil
}

// PaidRevenue sums totals of paid orders.
func (s *OrderRepositoryStub) PaidRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, o := range s.Items {
		if o.PaymentStatus == model.PaymentStatusPaid {
			total += o.TotalAmount
		}
	}
	return total, nil
}

// Recent returns stored orders up to limit.
func (s *OrderRepositoryStub) Recent(ctx context.Context, limit int) ([]model.Order, error) {
	result := make([]model.Order, 0, len(s.Items))
	for _, o := range s.Items {
		result = append(result, *o)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// ContactRepositoryStub stores contact messages in-memory for tests.
type ContactRepositoryStub struct {
	Items map[int64]*model.Contact
	Next  int64
	Err   error
}

// NewContactRepositoryStub constructs stub repository with initialized maps.
func NewContactRepositoryStub() *ContactRepositoryStub {
	return &ContactRepositoryStub{Items: make(map[int64]*model.Contact), Next: 1}
}

// Create stores the contact message under the next identifier.
func (s *ContactRepositoryStub) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *contact
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches contact message by identifier or returns not found.
func (s *ContactRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Items[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored messages, optionally narrowed by status.
func (s *ContactRepositoryStub) List(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Contact, 0, len(s.Items))
	for _, c := range s.Items {
		if status != "" && c.Status != status {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

// UpdateStatus applies handling state edits.
func (s *ContactRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error) {
	c, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if status != "" {
		c.Status = status
	}
	if replied != nil {
		c.Replied = *replied
	}
	copied := *c
	return &copied, nil
}

// Count reports the number of stored messages.
func (s *ContactRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Items)), nil
}

// CountByStatus reports messages matching the handling status.
func (s *ContactRepositoryStub) CountByStatus(ctx context.Context, status model.ContactStatus) (int64, error) {
	var count int64
	for _, c := range s.Items {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

// Recent returns stored messages up to limit.
func (s *ContactRepositoryStub) Recent(ctx context.Context, limit int) ([]model.Contact, error) {
	result := make([]model.Contact, 0, len(s.Items))
	for _, c := range s.Items {
		result = append(result, *c)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// AdminRepositoryStub stores admin accounts in-memory for tests.
type AdminRepositoryStub struct {
	ByEmail map[string]*model.Admin
	ByID    map[int64]*model.Admin
	Next    int64
	Err     error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		ByEmail: make(map[string]*model.Admin),
		ByID:    make(map[int64]*model.Admin),
		Next:    1,
	}
}

// Create registers an admin unless the email is taken.
func (s *AdminRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	admin := &model.Admin{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.ByEmail[email] = admin
	s.ByID[admin.ID] = admin
	return admin, nil
}

// GetByEmail fetches admin by email or returns not found.
func (s *AdminRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByEmail[email]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches admin by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}
