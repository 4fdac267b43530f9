package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

const (
	lowStockThreshold = 2
	recentLimit       = 5
)

// Dashboard is the aggregated admin dashboard payload.
type Dashboard struct {
	Overview         model.DashboardOverview
	RecentOrders     []model.Order
	LowStockArtworks []model.Artwork
	CategoryStats    []model.CategoryCount
}

// DashboardUseCase aggregates store-wide statistics for the admin views.
type DashboardUseCase struct {
	artworks repository.ArtworkRepository
	orders   repository.OrderRepository
	contacts repository.ContactRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(artworks repository.ArtworkRepository, orders repository.OrderRepository, contacts repository.ContactRepository) *DashboardUseCase {
	return &DashboardUseCase{artworks: artworks, orders: orders, contacts: contacts}
}

// Overview collects the dashboard counters and highlight lists.
func (u *DashboardUseCase) Overview(ctx context.Context) (*Dashboard, error) {
	var (
		dash Dashboard
		err  error
	)

	if dash.Overview.TotalArtworks, err = u.artworks.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Overview.TotalOrders, err = u.orders.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Overview.PendingOrders, err = u.orders.CountByOrderStatus(ctx, model.OrderStatusProcessing); err != nil {
		return nil, err
	}
	if dash.Overview.TotalMessages, err = u.contacts.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Overview.UnreadMessages, err = u.contacts.CountByStatus(ctx, model.ContactStatusNew); err != nil {
		return nil, err
	}
	if dash.Overview.TotalRevenue, err = u.orders.PaidRevenue(ctx); err != nil {
		return nil, err
	}

	if dash.RecentOrders, err = u.orders.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if dash.LowStockArtworks, err = u.artworks.LowStock(ctx, lowStockThreshold, recentLimit); err != nil {
		return nil, err
	}
	if dash.CategoryStats, err = u.artworks.CategoryCounts(ctx); err != nil {
		return nil, err
	}

	return &dash, nil
}

// Activity merges recent orders and contact messages into one feed sorted by
// time, newest first.
func (u *DashboardUseCase) Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	orders, err := u.orders.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	contacts, err := u.contacts.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, 0, len(orders)+len(contacts))
	for _, o := range orders {
		entries = append(entries, model.ActivityEntry{
			Type:      "order",
			OrderID:   o.ID,
			Summary:   fmt.Sprintf("%s placed an order for %.2f", o.CustomerName, o.TotalAmount),
			Timestamp: o.CreatedAt,
		})
	}
	for _, c := range contacts {
		entries = append(entries, model.ActivityEntry{
			Type:      "message",
			ContactID: c.ID,
			Summary:   fmt.Sprintf("%s sent a message", c.Name),
			Timestamp: c.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
