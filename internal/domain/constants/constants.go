// Package constants holds identifiers shared between configuration and infrastructure.
package constants

const (
	// PubSubProviderNoop disables event publishing.
	PubSubProviderNoop = "noop"
	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EnvLocal is the developer environment. Push requests are not authenticated there.
	EnvLocal = "local"

	// DefaultMaxActiveSessions caps concurrent refresh tokens per user when unset.
	DefaultMaxActiveSessions = 5

	// DashboardTopProducts is the size of the top-by-price list.
	DashboardTopProducts = 5
	// DashboardRecentActivity is the size of the recent activity feed.
	DashboardRecentActivity = 5
)
