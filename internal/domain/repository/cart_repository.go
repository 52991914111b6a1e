package repository

import (
	"context"
	"errors"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when no cart line matched for the user.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists cart lines. Every operation is scoped by user.
type CartRepository interface {
	// ListByUser returns the user's lines with their products resolved, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddOrIncrement inserts the line, or adds its quantity to the existing line for the same product.
	AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)

	// SetQuantity overwrites the quantity of one line.
	SetQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (*entity.CartItem, error)

	// Delete removes one line.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DeleteByUser removes all lines of a user. Empty carts are not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
