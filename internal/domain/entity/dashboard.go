package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardBundle is the admin console's combined read of products, roles and swap requests.
type DashboardBundle struct {
	Products     []*Product         `json:"products"`
	UserRoles    []*UserRole        `json:"user_roles"`
	SwapRequests *SwapRequestBundle `json:"swap_requests"`
	FetchedAt    time.Time          `json:"fetched_at"`
}

// IsFresh reports whether the bundle is younger than window at now.
func (b *DashboardBundle) IsFresh(now time.Time, window time.Duration) bool {
	return b != nil && now.Sub(b.FetchedAt) < window
}

// MarketStats are the admin headline counters.
type MarketStats struct {
	TotalProducts     int64 `json:"total_products"`
	AvailableProducts int64 `json:"available_products"`
	TotalUsers        int64 `json:"total_users"`
	PendingSwaps      int64 `json:"pending_swaps"`
}

// CountEntry is one bucket of a grouped count.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MarketAnalytics groups listings for the admin charts.
type MarketAnalytics struct {
	ByCategory []CountEntry `json:"by_category"`
	ByStatus   []CountEntry `json:"by_status"`
	TopByPrice []*Product   `json:"top_by_price"`
}

// ActivityKind identifies the source of an activity entry.
type ActivityKind string

const (
	ActivityProductListed ActivityKind = "product_listed"
	ActivitySwapRequested ActivityKind = "swap_requested"
)

// ActivityEntry is one item of the admin recent-activity feed.
type ActivityEntry struct {
	Kind      ActivityKind `json:"kind"`
	SubjectID uuid.UUID    `json:"subject_id"`
	ActorID   uuid.UUID    `json:"actor_id"`
	Summary   string       `json:"summary"`
	At        time.Time    `json:"at"`
}

// HealthCheck is the result of probing one dependency.
type HealthCheck struct {
	Name    string        `json:"name"`
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency_ns"`
	Error   string        `json:"error,omitempty"`
}
