package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the caller's cart.
type CartUsecase interface {
	// ViewCart returns the lines with resolved products and derived totals.
	ViewCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	// AddItem merges quantity into the line for productID, creating it when absent.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// SetQuantity overwrites a line's quantity. Quantities below one are rejected, not clamped.
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)

	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart empties the cart. Clearing an empty cart succeeds.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
