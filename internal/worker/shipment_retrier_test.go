package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
	testhelpers "github.com/inkandimagination/artstore/internal/test"
)

func TestNewShipmentRetrierDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	retrier := NewShipmentRetrier(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, logger)
	if retrier.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", retrier.batchSize)
	}
	if retrier.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", retrier.workers)
	}
}

func TestShipmentRetrierBooksFailedShipments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.Order{{{
		ID:             "order-1",
		PaymentStatus:  model.PaymentStatusPaid,
		ShippingStatus: model.ShippingStatusFailed,
	}}}}
	retrier := NewShipmentRetrier(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	retrier.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		retried := len(facade.Retried) > 0
		facade.Unlock()
		if retried {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for shipment retry")
		case <-time.After(10 * time.Millisecond):
		}
	}

	retrier.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Retried[0] != "order-1" {
		t.Fatalf("expected order-1 to be retried, got %v", facade.Retried)
	}
}

func TestShipmentRetrierKeepsPollingAfterBookingFailure(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Order{
			{{ID: "order-1", ShippingStatus: model.ShippingStatusFailed}},
			{{ID: "order-1", ShippingStatus: model.ShippingStatusFailed}},
		},
		RetryFn: func(ctx context.Context, order *model.Order) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("carrier unavailable")
			}
			return nil
		},
	}

	retrier := NewShipmentRetrier(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	retrier.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for second retry attempt")
		case <-time.After(10 * time.Millisecond):
		}
	}
	retrier.Stop()
}

func TestShipmentRetrierStopsOnContextCancel(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{}
	retrier := NewShipmentRetrier(facade, 5*time.Millisecond, 1, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	retrier.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		retrier.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for workers to stop")
	}
}
