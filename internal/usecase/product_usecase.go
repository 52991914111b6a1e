package usecase

import (
	"context"
	"io"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the fields of a new listing.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    entity.Category
	Location    *string
	ImageURL    *string
}

// UploadImageInput carries one product image upload.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProductUsecase manages listings. Writes are scoped to the owner.
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct edits a product the caller owns. Missing and foreign products both yield not found.
	UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, input entity.ProductUpdate) (*entity.Product, error)

	// DeleteProduct removes a product the caller owns.
	DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error

	// UploadImage stores an image under the owner's prefix and returns its public URL.
	UploadImage(ctx context.Context, ownerID uuid.UUID, input *UploadImageInput) (string, error)

	// ShareQRCode renders a PNG QR code linking to the product.
	ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
