package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// SwapRequestUsecase manages barter proposals.
type SwapRequestUsecase interface {
	// CreateSwapRequest proposes a swap against another user's product. The message is required.
	CreateSwapRequest(ctx context.Context, requesterID, productID uuid.UUID, message string) (*entity.SwapRequest, error)

	// ListSwapRequests returns the requests received on the caller's products and those it sent.
	ListSwapRequests(ctx context.Context, userID uuid.UUID) (*entity.SwapRequestBundle, error)

	// UpdateSwapStatus accepts or rejects a request. Only the product owner or an admin may do so.
	UpdateSwapStatus(ctx context.Context, actorID, id uuid.UUID, status entity.SwapStatus) (*entity.SwapRequest, error)
}
