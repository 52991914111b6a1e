package impl

import (
	"context"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	mockRepo "swapmarket/internal/mocks/repository"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	txCartRepo  *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	fx := cartServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		txCartRepo:  mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
	}
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo).Maybe()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo).Maybe()

	fx.service = NewCartService(CartServiceParams{
		TxManager: fx.txManager,
		CartRepo:  fx.cartRepo,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestCartService_AddItem_MergesIntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.txCartRepo.EXPECT().
		AddOrIncrement(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.UserID == userID && item.ProductID == productID && item.Quantity == 2
		})).
		Return(&entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 3}, nil)

	item, err := fx.service.AddItem(ctx, userID, productID, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), uuid.New(), 1)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_RejectsQuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, uuid.New(), uuid.New(), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))

	_, err = fx.service.SetQuantity(ctx, uuid.New(), uuid.New(), -1)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_SetQuantity_ForeignLine(t *testing.T) {
	fx := createTestCartService(t)
	userID, itemID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().SetQuantity(mock.Anything, userID, itemID, 4).Return(nil, repository.ErrCartItemNotFound)

	_, err := fx.service.SetQuantity(context.Background(), userID, itemID, 4)

	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_ViewCart_FlagsUnavailable(t *testing.T) {
	fx := createTestCartService(t)
	userID := uuid.New()
	gone := &entity.CartItem{ID: uuid.New(), Quantity: 1}
	items := []*entity.CartItem{
		{ID: uuid.New(), Quantity: 2, Product: &entity.Product{Price: decimal.NewFromInt(100)}},
		gone,
	}

	fx.cartRepo.EXPECT().ListByUser(mock.Anything, userID).Return(items, nil)

	view, err := fx.service.ViewCart(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, decimal.NewFromInt(200).Equal(view.TotalPrice))
	assert.Equal(t, []uuid.UUID{gone.ID}, view.Unavailable)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	fx := createTestCartService(t)
	userID, itemID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().Delete(mock.Anything, userID, itemID).Return(nil)
	fx.cartRepo.EXPECT().DeleteByUser(mock.Anything, userID).Return(nil)

	require.NoError(t, fx.service.RemoveItem(context.Background(), userID, itemID))
	require.NoError(t, fx.service.ClearCart(context.Background(), userID))

	assert.True(t, errors.Is(fx.service.ClearCart(context.Background(), uuid.Nil), domainerrors.ErrUnauthenticated))
}
