package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// swapRequestService implements the SwapRequestUsecase interface.
type swapRequestService struct {
	swapRepo    repository.SwapRequestRepository
	productRepo repository.ProductRepository
	roles       usecase.UserRoleUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// SwapRequestServiceParams holds dependencies for SwapRequestService, injected by Fx.
type SwapRequestServiceParams struct {
	fx.In

	SwapRepo    repository.SwapRequestRepository
	ProductRepo repository.ProductRepository
	Roles       usecase.UserRoleUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewSwapRequestService is the constructor for swapRequestService.
func NewSwapRequestService(params SwapRequestServiceParams) usecase.SwapRequestUsecase {
	return &swapRequestService{
		swapRepo:    params.SwapRepo,
		productRepo: params.ProductRepo,
		roles:       params.Roles,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *swapRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSwapRequest records a pending proposal and notifies the product owner.
func (srv *swapRequestService) CreateSwapRequest(ctx context.Context, requesterID, productID uuid.UUID, message string) (*entity.SwapRequest, error) {
	if requesterID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrSwapMessageRequired
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(mapProductError(err), "failed to load product for swap request")
	}
	if product.OwnerID == requesterID {
		return nil, domainerrors.ErrSwapOwnProduct
	}

	request := &entity.SwapRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		ProductID:   productID,
		Message:     message,
		Status:      entity.SwapPending,
		Product:     product,
	}
	if err := srv.swapRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create swap request", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create swap request")
	}

	srv.log(ctx).Info("Swap requested", slog.Any("requestID", request.ID), slog.Any("productID", productID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newMarketEvent(ctx, service.EventSwapRequested, requesterID, request.ID,
		[]uuid.UUID{product.OwnerID}, map[string]string{
			"product_id":   productID.String(),
			"product_name": product.Name,
		}))

	return request, nil
}

// ListSwapRequests runs the received and sent queries concurrently. Either failing fails the call.
func (srv *swapRequestService) ListSwapRequests(ctx context.Context, userID uuid.UUID) (*entity.SwapRequestBundle, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	bundle := &entity.SwapRequestBundle{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		productIDs, err := srv.productRepo.ListIDsByOwner(gctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list owned products")
		}

		received, err := srv.swapRepo.ListByProductIDs(gctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to list received swap requests")
		}
		bundle.Received = received

		return nil
	})

	g.Go(func() error {
		sent, err := srv.swapRepo.ListByRequester(gctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sent swap requests")
		}
		bundle.Sent = sent

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to list swap requests", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return bundle, nil
}

// UpdateSwapStatus resolves a request. Callers other than the product owner or an admin see not found.
func (srv *swapRequestService) UpdateSwapStatus(ctx context.Context, actorID, id uuid.UUID, status entity.SwapStatus) (*entity.SwapRequest, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !status.IsResolution() {
		return nil, domainerrors.ErrInvalidSwapStatus
	}

	request, err := srv.swapRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return nil, domainerrors.ErrSwapRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to load swap request")
	}

	allowed, err := srv.canResolve(ctx, actorID, request)
	if err != nil {
		return nil, err
	}
	if !allowed {
		srv.log(ctx).Warn("Swap status change by non-owner", slog.Any("requestID", id), slog.Any("actorID", actorID))

		return nil, domainerrors.ErrSwapRequestNotFound
	}

	updated, err := srv.swapRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return nil, domainerrors.ErrSwapRequestNotFound
		}
		srv.log(ctx).Error("Failed to update swap status", slog.Any("requestID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update swap status")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), newMarketEvent(ctx, service.EventSwapResolved, actorID, id,
		[]uuid.UUID{updated.RequesterID}, map[string]string{
			"product_id": updated.ProductID.String(),
			"status":     string(updated.Status),
		}))

	return updated, nil
}

func (srv *swapRequestService) canResolve(ctx context.Context, actorID uuid.UUID, request *entity.SwapRequest) (bool, error) {
	if request.Product != nil && request.Product.OwnerID == actorID {
		return true, nil
	}

	isAdmin, err := srv.roles.IsAdmin(ctx, actorID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check admin role")
	}

	return isAdmin, nil
}
