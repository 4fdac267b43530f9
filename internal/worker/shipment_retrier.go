package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	ShipmentRetries(ctx context.Context, limit int) ([]model.Order, error)
	RetryShipment(ctx context.Context, order *model.Order) error
}

// ShipmentRetrier polls for paid orders whose shipment booking failed and
// re-attempts booking concurrently. Booking stays best-effort: a retry
// failure only updates the shipping record, never the payment.
type ShipmentRetrier struct {
	facade       StoreFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewShipmentRetrier constructs shipment retry worker pool.
func NewShipmentRetrier(facade StoreFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ShipmentRetrier {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ShipmentRetrier{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *ShipmentRetrier) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *ShipmentRetrier) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ShipmentRetrier) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *ShipmentRetrier) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.ShipmentRetries(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch shipment retries failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *ShipmentRetrier) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *ShipmentRetrier) handleOrder(ctx context.Context, order model.Order) {
	if err := p.facade.RetryShipment(ctx, &order); err != nil {
		p.logger.Error("shipment retry failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	p.logger.Info("shipment booked on retry", slog.String("order_id", order.ID))
}
