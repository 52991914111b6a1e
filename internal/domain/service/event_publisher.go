package service

import (
	"context"
)

// Marketplace event types
const (
	EventSwapRequested = "swap_request.created"
	EventSwapResolved  = "swap_request.resolved"
	EventOrderPlaced   = "order.placed"
	EventProductListed = "product.listed"
	EventRoleChanged   = "user_role.changed"
)

// MarketEvent is a marketplace fact published for downstream consumers
type MarketEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	EventID      string            `json:"event_id"`
	Type         string            `json:"type"`
	ActorID      string            `json:"actor_id"`
	SubjectID    string            `json:"subject_id"`
	RecipientIDs []string          `json:"recipient_ids,omitempty"` // users to push-notify
	Data         map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketEvent publishes a marketplace event for async consumers
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
