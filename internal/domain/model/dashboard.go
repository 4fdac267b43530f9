package model

import "time"

// DashboardOverview aggregates store-wide counters for the admin dashboard.
type DashboardOverview struct {
	TotalArtworks  int64
	TotalOrders    int64
	PendingOrders  int64
	TotalMessages  int64
	UnreadMessages int64
	TotalRevenue   float64
}

// CategoryCount is one bucket of the catalog category distribution.
type CategoryCount struct {
	Category string
	Count    int64
}

// ActivityEntry is one item of the merged recent-activity feed.
type ActivityEntry struct {
	Type      string
	OrderID   string
	ContactID int64
	Summary   string
	Timestamp time.Time
}
