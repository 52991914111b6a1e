package impl

import (
	"context"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	txOrderRepo *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	metrics     *metrics.Metrics
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     metrics.New(),
	}
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo).Maybe()
	fx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo).Maybe()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo).Maybe()

	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func cartLine(buyerID uuid.UUID, quantity int, price int64) *entity.CartItem {
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "iPad",
		Price:   decimal.NewFromInt(price),
		OwnerID: uuid.New(),
		Status:  entity.ProductAvailable,
	}

	return &entity.CartItem{
		ID:        uuid.New(),
		UserID:    buyerID,
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	}
}

func TestOrderService_Checkout_SingleUnitMarksSold(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	single := cartLine(buyerID, 1, 300)
	multi := cartLine(buyerID, 3, 20)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().ListByUser(ctx, buyerID).Return([]*entity.CartItem{single, multi}, nil)
	fx.txOrderRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(orders []*entity.Order) bool {
			return len(orders) == 2 &&
				orders[0].SellerID == single.Product.OwnerID &&
				orders[0].Status == entity.OrderPending &&
				orders[0].PaymentStatus == entity.PaymentPending &&
				orders[1].TotalAmount.Equal(decimal.NewFromInt(60))
		})).
		Return(nil)
	fx.productRepo.EXPECT().MarkSold(ctx, []uuid.UUID{single.ProductID}).Return(nil)
	fx.cartRepo.EXPECT().DeleteByUser(ctx, buyerID).Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventOrderPlaced && len(e.RecipientIDs) == 1
		})).
		Return(nil).
		Times(2)

	result, err := fx.service.Checkout(ctx, buyerID)

	require.NoError(t, err)
	assert.Len(t, result.Orders, 2)
	assert.True(t, decimal.NewFromInt(360).Equal(result.TotalAmount))
	assert.Equal(t, []uuid.UUID{single.ProductID}, result.SoldProductIDs)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.CheckoutTotal.WithLabelValues("completed")), 0)
}

func TestOrderService_Checkout_MultiUnitLeavesProductAvailable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	line := cartLine(buyerID, 2, 50)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().ListByUser(ctx, buyerID).Return([]*entity.CartItem{line}, nil)
	fx.txOrderRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().DeleteByUser(ctx, buyerID).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Checkout(ctx, buyerID)

	require.NoError(t, err)
	assert.Empty(t, result.SoldProductIDs)
	fx.productRepo.AssertNotCalled(t, "MarkSold", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().ListByUser(ctx, buyerID).Return(nil, nil)

	result, err := fx.service.Checkout(ctx, buyerID)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.CheckoutTotal.WithLabelValues("failed")), 0)
}

func TestOrderService_Checkout_MissingProductAbortsBeforeWrites(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	gone := &entity.CartItem{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1}

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().ListByUser(ctx, buyerID).Return([]*entity.CartItem{cartLine(buyerID, 1, 10), gone}, nil)

	_, err := fx.service.Checkout(ctx, buyerID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	fx.txOrderRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	fx.cartRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_MarkSoldFailureKeepsCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	line := cartLine(buyerID, 1, 10)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().ListByUser(ctx, buyerID).Return([]*entity.CartItem{line}, nil)
	fx.txOrderRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.productRepo.EXPECT().MarkSold(ctx, mock.Anything).Return(errors.New("deadlock detected"))

	_, err := fx.service.Checkout(ctx, buyerID)

	require.Error(t, err)
	fx.cartRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishMarketEvent", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrders_ExplicitLines(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(75), OwnerID: uuid.New()}

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txOrderRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.productRepo.EXPECT().MarkSold(ctx, []uuid.UUID{product.ID}).Return(nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.CreateOrders(ctx, buyerID, []usecase.OrderLine{{ProductID: product.ID, Quantity: 1}})

	require.NoError(t, err)
	assert.Equal(t, product.OwnerID, result.Orders[0].SellerID)
	// Ordering explicit lines leaves the stored cart alone
	fx.cartRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrders_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrders(context.Background(), uuid.New(), []usecase.OrderLine{{ProductID: uuid.New(), Quantity: 0}})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	buyerID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), BuyerID: buyerID}}

	fx.orderRepo.EXPECT().ListByBuyer(mock.Anything, buyerID).Return(orders, nil)

	got, err := fx.service.ListOrders(context.Background(), buyerID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
