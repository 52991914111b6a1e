package impl

import (
	"context"
	"log/slog"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func mapCartError(err error) error {
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return domainerrors.ErrCartItemNotFound
	}

	return err
}

// ViewCart returns the cart lines with totals. Lines whose product was deleted are flagged unavailable.
func (srv *cartService) ViewCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return entity.NewCartView(items), nil
}

// AddItem merges quantity into the user's line for productID.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var item *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().FindByID(ctx, productID); err != nil {
			return mapProductError(err)
		}

		var err error
		item, err = repoFactory.NewCartRepository().AddOrIncrement(ctx, &entity.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})

		return errors.Wrap(err, "failed to add cart item")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add to cart", slog.Any("userID", userID), slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add-to-cart transaction")
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("itemID", item.ID), slog.Int("quantity", item.Quantity))

	return item, nil
}

// SetQuantity overwrites a line's quantity. Quantities below one are rejected rather than clamped.
func (srv *cartService) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := srv.cartRepo.SetQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, errors.Wrap(mapCartError(err), "failed to set cart quantity")
	}

	return item, nil
}

// RemoveItem deletes one of the user's lines.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return errors.Wrap(mapCartError(err), "failed to remove cart item")
	}

	return nil
}

// ClearCart deletes every line of the user.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
