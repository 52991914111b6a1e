package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLine is one product and quantity to purchase.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderUsecase converts cart lines into orders.
type OrderUsecase interface {
	// CreateOrders places one order per line in a single transaction. Single-unit lines mark
	// their product sold and the buyer's cart is cleared. Any failure rolls everything back.
	CreateOrders(ctx context.Context, buyerID uuid.UUID, lines []OrderLine) (*entity.CheckoutResult, error)

	// Checkout places orders for every line of the buyer's cart.
	Checkout(ctx context.Context, buyerID uuid.UUID) (*entity.CheckoutResult, error)

	// ListOrders returns the buyer's orders newest first.
	ListOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
}
