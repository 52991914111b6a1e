package entity

import (
	"time"

	"github.com/google/uuid"
)

// SwapStatus is the state of a barter proposal.
type SwapStatus string

const (
	SwapPending  SwapStatus = "pending"
	SwapAccepted SwapStatus = "accepted"
	SwapRejected SwapStatus = "rejected"
)

// IsValid checks the status against the closed set.
func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapPending, SwapAccepted, SwapRejected:
		return true
	default:
		return false
	}
}

// IsResolution reports whether the status is a valid answer to a pending request.
func (s SwapStatus) IsResolution() bool {
	return s == SwapAccepted || s == SwapRejected
}

// SwapRequest is a barter proposal sent by a requester against another user's product.
type SwapRequest struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	ProductID   uuid.UUID  `json:"product_id"`
	Message     string     `json:"message"`
	Status      SwapStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// SwapRequestBundle splits requests by direction relative to one identity.
// Received are requests against products the identity owns; Sent are requests it authored.
type SwapRequestBundle struct {
	Received []*SwapRequest `json:"received"`
	Sent     []*SwapRequest `json:"sent"`
}
