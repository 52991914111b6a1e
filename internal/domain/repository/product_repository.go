package repository

import (
	"context"
	"errors"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matched, including ownership-scoped writes
// where the caller does not own the row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists product listings.
type ProductRepository interface {
	// List returns products newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves products by ID. Missing IDs are absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListIDsByOwner returns the IDs of every product owned by ownerID.
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies an edit scoped to id and ownerID. Zero matched rows yield ErrProductNotFound.
	Update(ctx context.Context, ownerID, id uuid.UUID, update entity.ProductUpdate) (*entity.Product, error)

	// Delete removes a product scoped to id and ownerID. Zero matched rows yield ErrProductNotFound.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// MarkSold sets status to sold for every given product.
	MarkSold(ctx context.Context, ids []uuid.UUID) error

	// CountByStatus returns the number of products with status, or all products when status is empty.
	CountByStatus(ctx context.Context, status entity.ProductStatus) (int64, error)
}
