package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places orders for the whole cart.
func (srv *orderService) Checkout(ctx context.Context, buyerID uuid.UUID) (*entity.CheckoutResult, error) {
	if buyerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return srv.place(ctx, buyerID, true, func(repoFactory repository.RepositoryFactory) (entity.Cart, error) {
		items, err := repoFactory.NewCartRepository().ListByUser(ctx, buyerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart")
		}

		return items, nil
	})
}

// CreateOrders places orders for explicit lines. The stored cart is left untouched.
func (srv *orderService) CreateOrders(ctx context.Context, buyerID uuid.UUID, lines []usecase.OrderLine) (*entity.CheckoutResult, error) {
	if buyerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrInvalidQuantity
		}
	}

	return srv.place(ctx, buyerID, false, func(repoFactory repository.RepositoryFactory) (entity.Cart, error) {
		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}

		products, err := repoFactory.NewProductRepository().FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load products")
		}
		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		items := make(entity.Cart, 0, len(lines))
		for _, line := range lines {
			items = append(items, &entity.CartItem{
				UserID:    buyerID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Product:   byID[line.ProductID],
			})
		}

		return items, nil
	})
}

// place runs one transaction that inserts an order per line and marks single-unit products sold.
// With clearCart set the buyer's cart is emptied in the same transaction. Any failure rolls back every step.
func (srv *orderService) place(
	ctx context.Context,
	buyerID uuid.UUID,
	clearCart bool,
	loadLines func(repository.RepositoryFactory) (entity.Cart, error),
) (*entity.CheckoutResult, error) {
	var result *entity.CheckoutResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lines, err := loadLines(repoFactory)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domainerrors.ErrCartEmpty
		}

		result = &entity.CheckoutResult{TotalAmount: decimal.Zero}
		for _, line := range lines {
			if line.Unavailable() {
				return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s is no longer available", line.ProductID)
			}

			order := entity.NewOrderFromLine(buyerID, line)
			result.Orders = append(result.Orders, order)
			result.TotalAmount = result.TotalAmount.Add(order.TotalAmount)
			if line.MarksSold() {
				result.SoldProductIDs = append(result.SoldProductIDs, line.ProductID)
			}
		}

		if err := repoFactory.NewOrderRepository().CreateBatch(ctx, result.Orders); err != nil {
			return errors.Wrap(err, "failed to create orders")
		}
		if len(result.SoldProductIDs) > 0 {
			if err := repoFactory.NewProductRepository().MarkSold(ctx, result.SoldProductIDs); err != nil {
				return errors.Wrap(err, "failed to mark products sold")
			}
		}
		if clearCart {
			if err := repoFactory.NewCartRepository().DeleteByUser(ctx, buyerID); err != nil {
				return errors.Wrap(err, "failed to clear cart")
			}
		}

		return nil
	})
	if err != nil {
		srv.observe("failed")
		srv.log(ctx).Warn("Checkout failed", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.observe("completed")
	srv.log(ctx).Info("Checkout completed",
		slog.Any("buyerID", buyerID),
		slog.Int("orders", len(result.Orders)),
		slog.String("total", result.TotalAmount.String()))
	srv.notifySellers(ctx, buyerID, result)

	return result, nil
}

func (srv *orderService) observe(outcome string) {
	if srv.metrics != nil {
		srv.metrics.CheckoutTotal.WithLabelValues(outcome).Inc()
	}
}

func (srv *orderService) notifySellers(ctx context.Context, buyerID uuid.UUID, result *entity.CheckoutResult) {
	for _, order := range result.Orders {
		data := map[string]string{
			"order_id":     order.ID.String(),
			"quantity":     strconv.Itoa(order.Quantity),
			"total_amount": order.TotalAmount.String(),
		}
		if order.Product != nil {
			data["product_name"] = order.Product.Name
		}
		event := newMarketEvent(ctx, service.EventOrderPlaced, buyerID, order.ProductID, []uuid.UUID{order.SellerID}, data)
		publishEvent(ctx, srv.publisher, srv.log(ctx), event)
	}
}

// ListOrders returns the buyer's orders newest first.
func (srv *orderService) ListOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	if buyerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	orders, err := srv.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
