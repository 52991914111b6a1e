package repository

import (
	"context"
	"errors"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSwapRequestNotFound is returned when a swap request is not found.
var ErrSwapRequestNotFound = errors.New("swap request not found")

// SwapRequestRepository persists swap requests. Requests are never deleted.
type SwapRequestRepository interface {
	// Create persists a new swap request.
	Create(ctx context.Context, request *entity.SwapRequest) error

	// FindByID retrieves a request with its product attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error)

	// ListByProductIDs returns requests against any of the given products, newest first.
	ListByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.SwapRequest, error)

	// ListByRequester returns requests authored by requesterID, newest first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.SwapRequest, error)

	// ListRecent returns the newest requests across the marketplace.
	ListRecent(ctx context.Context, limit int) ([]*entity.SwapRequest, error)

	// UpdateStatus sets the status and returns the stored row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SwapStatus) (*entity.SwapRequest, error)

	// CountByStatus returns the number of requests in status.
	CountByStatus(ctx context.Context, status entity.SwapStatus) (int64, error)
}
