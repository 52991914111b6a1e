package repository

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository persists orders. Orders are never deleted.
type OrderRepository interface {
	// CreateBatch inserts all orders in one statement.
	CreateBatch(ctx context.Context, orders []*entity.Order) error

	// ListByBuyer returns a buyer's orders newest first with products attached.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
}
