package impl

import (
	"context"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	mockUsecase "swapmarket/internal/mocks/usecase"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type swapRequestServiceFixtures struct {
	service     usecase.SwapRequestUsecase
	swapRepo    *mockRepo.MockSwapRequestRepository
	productRepo *mockRepo.MockProductRepository
	roles       *mockUsecase.MockUserRoleUsecase
	publisher   *mockSvc.MockEventPublisher
}

func createTestSwapRequestService(t *testing.T) swapRequestServiceFixtures {
	fx := swapRequestServiceFixtures{
		swapRepo:    mockRepo.NewMockSwapRequestRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		roles:       mockUsecase.NewMockUserRoleUsecase(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewSwapRequestService(SwapRequestServiceParams{
		SwapRepo:    fx.swapRepo,
		ProductRepo: fx.productRepo,
		Roles:       fx.roles,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestSwapRequestService_Create_NotifiesOwner(t *testing.T) {
	fx := createTestSwapRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Galaxy Tab", OwnerID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.swapRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.SwapRequest) bool {
			return r.RequesterID == requesterID && r.Status == entity.SwapPending && r.Message == "trade for my Kindle?"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventSwapRequested &&
				len(e.RecipientIDs) == 1 && e.RecipientIDs[0] == product.OwnerID.String()
		})).
		Return(nil)

	request, err := fx.service.CreateSwapRequest(ctx, requesterID, product.ID, "  trade for my Kindle? ")

	require.NoError(t, err)
	assert.Equal(t, entity.SwapPending, request.Status)
}

func TestSwapRequestService_Create_Rejections(t *testing.T) {
	requesterID := uuid.New()

	tests := []struct {
		name    string
		message string
		setup   func(fx swapRequestServiceFixtures, productID uuid.UUID)
		wantErr error
	}{
		{
			name:    "blank message",
			message: "   ",
			setup:   func(swapRequestServiceFixtures, uuid.UUID) {},
			wantErr: domainerrors.ErrSwapMessageRequired,
		},
		{
			name:    "own product",
			message: "hi",
			setup: func(fx swapRequestServiceFixtures, productID uuid.UUID) {
				fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID, OwnerID: requesterID}, nil)
			},
			wantErr: domainerrors.ErrSwapOwnProduct,
		},
		{
			name:    "missing product",
			message: "hi",
			setup: func(fx swapRequestServiceFixtures, productID uuid.UUID) {
				fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSwapRequestService(t)
			productID := uuid.New()
			tt.setup(fx, productID)

			_, err := fx.service.CreateSwapRequest(context.Background(), requesterID, productID, tt.message)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSwapRequestService_List_ReceivedOnlyForOwnedProducts(t *testing.T) {
	fx := createTestSwapRequestService(t)
	userID := uuid.New()
	owned := []uuid.UUID{uuid.New(), uuid.New()}
	received := []*entity.SwapRequest{{ID: uuid.New(), ProductID: owned[0]}}
	sent := []*entity.SwapRequest{{ID: uuid.New(), RequesterID: userID}}

	fx.productRepo.EXPECT().ListIDsByOwner(mock.Anything, userID).Return(owned, nil)
	fx.swapRepo.EXPECT().ListByProductIDs(mock.Anything, owned).Return(received, nil)
	fx.swapRepo.EXPECT().ListByRequester(mock.Anything, userID).Return(sent, nil)

	bundle, err := fx.service.ListSwapRequests(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, received, bundle.Received)
	assert.Equal(t, sent, bundle.Sent)
}

func TestSwapRequestService_List_EitherSideFails(t *testing.T) {
	fx := createTestSwapRequestService(t)
	userID := uuid.New()

	fx.productRepo.EXPECT().ListIDsByOwner(mock.Anything, userID).Return([]uuid.UUID{}, nil)
	fx.swapRepo.EXPECT().ListByProductIDs(mock.Anything, mock.Anything).Return([]*entity.SwapRequest{}, nil).Maybe()
	fx.swapRepo.EXPECT().ListByRequester(mock.Anything, userID).Return(nil, errors.New("read replica lag"))

	bundle, err := fx.service.ListSwapRequests(context.Background(), userID)

	require.Error(t, err)
	assert.Nil(t, bundle)
}

func TestSwapRequestService_UpdateStatus_OwnerResolves(t *testing.T) {
	fx := createTestSwapRequestService(t)
	ctx := context.Background()
	ownerID, requesterID := uuid.New(), uuid.New()
	request := &entity.SwapRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Status:      entity.SwapPending,
		Product:     &entity.Product{OwnerID: ownerID},
	}
	accepted := *request
	accepted.Status = entity.SwapAccepted

	fx.swapRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.swapRepo.EXPECT().UpdateStatus(ctx, request.ID, entity.SwapAccepted).Return(&accepted, nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventSwapResolved && e.RecipientIDs[0] == requesterID.String() && e.Data["status"] == "accepted"
		})).
		Return(nil)

	updated, err := fx.service.UpdateSwapStatus(ctx, ownerID, request.ID, entity.SwapAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.SwapAccepted, updated.Status)
}

func TestSwapRequestService_UpdateStatus_NonOwnerSeesNotFound(t *testing.T) {
	fx := createTestSwapRequestService(t)
	ctx := context.Background()
	strangerID := uuid.New()
	request := &entity.SwapRequest{ID: uuid.New(), Product: &entity.Product{OwnerID: uuid.New()}}

	fx.swapRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.roles.EXPECT().IsAdmin(ctx, strangerID).Return(false, nil)

	_, err := fx.service.UpdateSwapStatus(ctx, strangerID, request.ID, entity.SwapRejected)

	assert.True(t, errors.Is(err, domainerrors.ErrSwapRequestNotFound))
	fx.swapRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSwapRequestService_UpdateStatus_AdminResolves(t *testing.T) {
	fx := createTestSwapRequestService(t)
	ctx := context.Background()
	adminID := uuid.New()
	request := &entity.SwapRequest{ID: uuid.New(), RequesterID: uuid.New(), Product: &entity.Product{OwnerID: uuid.New()}}

	fx.swapRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.roles.EXPECT().IsAdmin(ctx, adminID).Return(true, nil)
	fx.swapRepo.EXPECT().UpdateStatus(ctx, request.ID, entity.SwapRejected).Return(request, nil)
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.UpdateSwapStatus(ctx, adminID, request.ID, entity.SwapRejected)

	require.NoError(t, err)
}

func TestSwapRequestService_UpdateStatus_PendingIsNotAResolution(t *testing.T) {
	fx := createTestSwapRequestService(t)

	_, err := fx.service.UpdateSwapStatus(context.Background(), uuid.New(), uuid.New(), entity.SwapPending)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSwapStatus))
}
