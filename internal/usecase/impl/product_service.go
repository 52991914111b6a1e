package impl

import (
	"context"
	"log/slog"
	"strings"

	"swapmarket/config"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo   repository.ProductRepository
	storage       service.ObjectStorage
	qrCode        service.QRCodeService
	publisher     service.EventPublisher
	maxImageBytes int64
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Storage     service.ObjectStorage
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageBytes > 0 {
		maxImageBytes = params.Config.Storage.MaxImageBytes
	}

	return &productService{
		productRepo:   params.ProductRepo,
		storage:       params.Storage,
		qrCode:        params.QRCode,
		publisher:     params.Publisher,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return err
}

// ListProducts returns every matching product, newest first.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status")
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves one product.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Error("Failed to get product", slog.Any("productID", id), slog.Any("error", err))
		}

		return nil, errors.Wrap(mapProductError(err), "failed to get product")
	}

	return product, nil
}

// CreateProduct lists a new available product owned by ownerID.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if ownerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Location:    input.Location,
		Status:      entity.ProductAvailable,
		ImageURL:    input.ImageURL,
		OwnerID:     ownerID,
	}
	if !product.Validate() {
		return nil, domainerrors.ErrProductInvalid
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product listed", slog.Any("productID", product.ID), slog.Any("ownerID", ownerID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newMarketEvent(ctx, service.EventProductListed, ownerID, product.ID, nil, map[string]string{
		"category": string(product.Category),
		"price":    product.Price.String(),
	}))

	return product, nil
}

// UpdateProduct edits a product owned by ownerID. Foreign, missing and stale products all read as not found.
func (srv *productService) UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, input entity.ProductUpdate) (*entity.Product, error) {
	if ownerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !input.Validate() {
		return nil, domainerrors.ErrProductInvalid
	}

	product, err := srv.productRepo.Update(ctx, ownerID, id, input)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Product update matched nothing", slog.Any("productID", id), slog.Any("ownerID", ownerID))
		} else {
			srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))
		}

		return nil, errors.Wrap(mapProductError(err), "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product owned by ownerID.
func (srv *productService) DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.productRepo.Delete(ctx, ownerID, id); err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))
		}

		return errors.Wrap(mapProductError(err), "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id), slog.Any("ownerID", ownerID))

	return nil
}

// UploadImage stores the image at {ownerID}/{uuid}.{ext} and returns its public URL.
func (srv *productService) UploadImage(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadImageInput) (string, error) {
	if ownerID == uuid.Nil {
		return "", domainerrors.ErrUnauthenticated
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", domainerrors.ErrImageInvalid.WithDetails("unsupported content type " + contentType)
	}
	if input.Size <= 0 || input.Size > srv.maxImageBytes {
		return "", domainerrors.ErrImageInvalid.WithDetails("image is empty or too large")
	}
	key := ownerID.String() + "/" + uuid.NewString() + "." + ext
	srv.log(ctx).Debug("Storing image", slog.String("filename", input.Filename), slog.String("key", key))
	if err := srv.storage.Put(ctx, key, contentType, input.Body); err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	srv.log(ctx).Info("Image stored", slog.String("key", key))

	return srv.storage.PublicURL(key), nil
}

// ShareQRCode renders a QR code for an existing product.
func (srv *productService) ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
