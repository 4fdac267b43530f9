package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// WorkerFacadeStub mimics worker interactions with the fulfillment facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Order
	RetriesFn      func(context.Context, int) ([]model.Order, error)
	RetryFn        func(context.Context, *model.Order) error
	Retried        []string
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// ShipmentRetries returns batches from configured queue.
func (s *WorkerFacadeStub) ShipmentRetries(ctx context.Context, limit int) ([]model.Order, error) {
	if s.RetriesFn != nil {
		return s.RetriesFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// RetryShipment records retried orders.
func (s *WorkerFacadeStub) RetryShipment(ctx context.Context, order *model.Order) error {
	if s.RetryFn != nil {
		return s.RetryFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Retried = append(s.Retried, order.ID)
	return nil
}
