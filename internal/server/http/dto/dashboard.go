package dto

import (
	"time"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// DashboardStats carries the store-wide counters of the admin dashboard.
type DashboardStats struct {
	TotalArtworks  int64   `json:"totalArtworks"`
	TotalOrders    int64   `json:"totalOrders"`
	PendingOrders  int64   `json:"pendingOrders"`
	TotalMessages  int64   `json:"totalMessages"`
	UnreadMessages int64   `json:"unreadMessages"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// CategoryCountResponse is one bucket of the category distribution.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DashboardResponse is the payload of GET /api/admin/dashboard.
type DashboardResponse struct {
	Stats            DashboardStats          `json:"stats"`
	RecentOrders     []OrderResponse         `json:"recentOrders"`
	LowStockArtworks []ArtworkResponse       `json:"lowStockArtworks"`
	CategoryStats    []CategoryCountResponse `json:"categoryStats"`
}

// ActivityEntryResponse is one item of GET /api/admin/activity.
type ActivityEntryResponse struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"orderId,omitempty"`
	ContactID int64     `json:"contactId,omitempty"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

// FromDashboard builds the response view of the dashboard aggregate.
func FromDashboard(d *usecase.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Stats: DashboardStats{
			TotalArtworks:  d.Overview.TotalArtworks,
			TotalOrders:    d.Overview.TotalOrders,
			PendingOrders:  d.Overview.PendingOrders,
			TotalMessages:  d.Overview.TotalMessages,
			UnreadMessages: d.Overview.UnreadMessages,
			TotalRevenue:   d.Overview.TotalRevenue,
		},
		RecentOrders:     make([]OrderResponse, 0, len(d.RecentOrders)),
		LowStockArtworks: make([]ArtworkResponse, 0, len(d.LowStockArtworks)),
		CategoryStats:    make([]CategoryCountResponse, 0, len(d.CategoryStats)),
	}
	for i := range d.RecentOrders {
		resp.RecentOrders = append(resp.RecentOrders, FromOrder(&d.RecentOrders[i]))
	}
	for i := range d.LowStockArtworks {
		resp.LowStockArtworks = append(resp.LowStockArtworks, FromArtwork(&d.LowStockArtworks[i]))
	}
	for _, s := range d.CategoryStats {
		resp.CategoryStats = append(resp.CategoryStats, CategoryCountResponse{Category: s.Category, Count: s.Count})
	}
	return resp
}

// FromActivity builds the response view of the activity feed.
func FromActivity(entries []model.ActivityEntry) []ActivityEntryResponse {
	resp := make([]ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ActivityEntryResponse{
			Type:      e.Type,
			OrderID:   e.OrderID,
			ContactID: e.ContactID,
			Summary:   e.Summary,
			Timestamp: e.Timestamp,
		})
	}
	return resp
}
