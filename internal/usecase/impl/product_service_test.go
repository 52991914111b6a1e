package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockObjectStorage
	qrCode      *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		storage:     mockSvc.NewMockObjectStorage(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewProductService(ProductServiceParams{
		ProductRepo: fx.productRepo,
		Storage:     fx.storage,
		QRCode:      fx.qrCode,
		Publisher:   fx.publisher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestProductService_CreateProduct_ListsAvailable(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.OwnerID == ownerID && p.Status == entity.ProductAvailable && p.Name == "Pixel 8"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventProductListed && e.Data["price"] == "450.5" && len(e.RecipientIDs) == 0
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, ownerID, &usecase.CreateProductInput{
		Name:     "  Pixel 8 ",
		Price:    decimal.RequireFromString("450.50"),
		Category: entity.CategorySmartphones,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, product.OwnerID)
	assert.Equal(t, entity.ProductAvailable, product.Status)
}

func TestProductService_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateProductInput
	}{
		{name: "missing name", input: usecase.CreateProductInput{Price: decimal.NewFromInt(1), Category: entity.CategoryTVs}},
		{name: "negative price", input: usecase.CreateProductInput{Name: "TV", Price: decimal.NewFromInt(-1), Category: entity.CategoryTVs}},
		{name: "unknown category", input: usecase.CreateProductInput{Name: "TV", Price: decimal.NewFromInt(1), Category: "furniture"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrProductInvalid))
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestProductService_CreateProduct_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:     "MacBook",
		Price:    decimal.NewFromInt(900),
		Category: entity.CategoryLaptops,
	})

	require.NoError(t, err)
}

func TestProductService_UpdateProduct_ForeignReadsAsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ownerID, productID := uuid.New(), uuid.New()
	sold := entity.ProductSold
	update := entity.ProductUpdate{Status: &sold}

	fx.productRepo.EXPECT().Update(mock.Anything, ownerID, productID, update).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(context.Background(), ownerID, productID, update)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProductService_UpdateProduct_RejectsUnknownStatus(t *testing.T) {
	fx := createTestProductService(t)
	bogus := entity.ProductStatus("reserved")

	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), uuid.New(), entity.ProductUpdate{Status: &bogus})

	assert.True(t, errors.Is(err, domainerrors.ErrProductInvalid))
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	filter := entity.ProductFilter{Category: entity.CategoryTablets}
	products := []*entity.Product{{ID: uuid.New()}}

	fx.productRepo.EXPECT().List(mock.Anything, filter).Return(products, nil)

	got, err := fx.service.ListProducts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	_, err = fx.service.ListProducts(context.Background(), entity.ProductFilter{Category: "cameras"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ownerID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().Delete(mock.Anything, ownerID, productID).Return(nil).Once()
	fx.productRepo.EXPECT().Delete(mock.Anything, ownerID, productID).Return(repository.ErrProductNotFound).Once()

	require.NoError(t, fx.service.DeleteProduct(context.Background(), ownerID, productID))
	assert.True(t, errors.Is(fx.service.DeleteProduct(context.Background(), ownerID, productID), domainerrors.ErrProductNotFound))
}

func TestProductService_UploadImage(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	body := bytes.NewReader([]byte("png-bytes"))

	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, ownerID.String()+"/") && strings.HasSuffix(key, ".png")
		}), "image/png", body).
		Return(nil)
	fx.storage.EXPECT().PublicURL(mock.AnythingOfType("string")).RunAndReturn(func(key string) string {
		return "http://localhost:8080/api/v1/images/" + key
	})

	url, err := fx.service.UploadImage(ctx, ownerID, &usecase.UploadImageInput{
		Filename:    "phone.png",
		ContentType: "image/png",
		Size:        9,
		Body:        body,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/api/v1/images/"+ownerID.String()+"/"))
}

func TestProductService_UploadImage_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.UploadImageInput
	}{
		{name: "unsupported type", input: usecase.UploadImageInput{ContentType: "application/pdf", Size: 10}},
		{name: "too large", input: usecase.UploadImageInput{ContentType: "image/jpeg", Size: 4096}},
		{name: "empty", input: usecase.UploadImageInput{ContentType: "image/jpeg", Size: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.UploadImage(context.Background(), uuid.New(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrImageInvalid))
		})
	}
}

func TestProductService_UploadImage_StorageFailure(t *testing.T) {
	fx := createTestProductService(t)

	fx.storage.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket unreachable"))

	_, err := fx.service.UploadImage(context.Background(), uuid.New(), &usecase.UploadImageInput{
		ContentType: "image/webp",
		Size:        10,
		Body:        strings.NewReader("webp"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrImageUploadFailed))
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
}

func TestProductService_ShareQRCode(t *testing.T) {
	fx := createTestProductService(t)
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.qrCode.EXPECT().GenerateProductQR(productID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ShareQRCode(context.Background(), productID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProductService_ShareQRCode_MissingProduct(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ShareQRCode(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
