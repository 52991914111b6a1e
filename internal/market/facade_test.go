package market

import (
	"context"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	mockUsecase "swapmarket/internal/mocks/usecase"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type facadeFixtures struct {
	facade    *Facade
	products  *mockUsecase.MockProductUsecase
	profiles  *mockUsecase.MockProfileUsecase
	swaps     *mockUsecase.MockSwapRequestUsecase
	roles     *mockUsecase.MockUserRoleUsecase
	orders    *mockUsecase.MockOrderUsecase
	cart      *mockUsecase.MockCartUsecase
	dashboard *mockUsecase.MockDashboardUsecase
	devices   *mockUsecase.MockDeviceUsecase
}

func createTestFacade(t *testing.T) facadeFixtures {
	fx := facadeFixtures{
		products:  mockUsecase.NewMockProductUsecase(t),
		profiles:  mockUsecase.NewMockProfileUsecase(t),
		swaps:     mockUsecase.NewMockSwapRequestUsecase(t),
		roles:     mockUsecase.NewMockUserRoleUsecase(t),
		orders:    mockUsecase.NewMockOrderUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
	}
	fx.facade = NewFacade(FacadeParams{
		Products:  fx.products,
		Profiles:  fx.profiles,
		Swaps:     fx.swaps,
		Roles:     fx.roles,
		Orders:    fx.orders,
		Cart:      fx.cart,
		Dashboard: fx.dashboard,
		Devices:   fx.devices,
	})

	return fx
}

func TestScope_Session_LoadsRoleAndProfile(t *testing.T) {
	fx := createTestFacade(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	profile := &entity.Profile{ID: user.ID, Email: user.Email}

	fx.roles.EXPECT().GetCurrentRole(mock.Anything, user.ID).Return(entity.RoleAdmin)
	fx.profiles.EXPECT().GetProfile(mock.Anything, user).Return(profile, nil)

	view, err := fx.facade.For(user).Session(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, view.Role)
	assert.Equal(t, profile, view.Profile)
	assert.Equal(t, user, view.User)
}

func TestScope_Session_ProfileFailure(t *testing.T) {
	fx := createTestFacade(t)
	user := &entity.User{ID: uuid.New()}

	fx.roles.EXPECT().GetCurrentRole(mock.Anything, user.ID).Return(entity.RoleUser)
	fx.profiles.EXPECT().GetProfile(mock.Anything, user).Return(nil, domainerrors.ErrDataUnavailable)

	view, err := fx.facade.For(user).Session(context.Background())

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDataUnavailable))
}

func TestScope_Anonymous(t *testing.T) {
	fx := createTestFacade(t)
	scope := fx.facade.For(nil)

	assert.Equal(t, uuid.Nil, scope.UserID())

	_, err := scope.Session(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = scope.Profile(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = scope.MyProducts(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestScope_BindsIdentity(t *testing.T) {
	fx := createTestFacade(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	scope := fx.facade.For(user)
	productID, itemID := uuid.New(), uuid.New()

	fx.cart.EXPECT().AddItem(ctx, user.ID, productID, 2).Return(&entity.CartItem{ID: itemID, Quantity: 2}, nil)
	fx.orders.EXPECT().Checkout(ctx, user.ID).Return(&entity.CheckoutResult{}, nil)
	fx.swaps.EXPECT().CreateSwapRequest(ctx, user.ID, productID, "trade?").Return(&entity.SwapRequest{}, nil)
	fx.products.EXPECT().DeleteProduct(ctx, user.ID, productID).Return(nil)
	fx.products.EXPECT().
		ListProducts(ctx, entity.ProductFilter{OwnerID: user.ID}).
		Return([]*entity.Product{}, nil)

	item, err := scope.AddToCart(ctx, productID, 2)
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)

	_, err = scope.Checkout(ctx)
	require.NoError(t, err)

	_, err = scope.RequestSwap(ctx, productID, "trade?")
	require.NoError(t, err)

	require.NoError(t, scope.DeleteProduct(ctx, productID))

	_, err = scope.MyProducts(ctx)
	require.NoError(t, err)
}

func TestScope_AssignRole_InvalidatesDashboard(t *testing.T) {
	fx := createTestFacade(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New()}
	input := &usecase.UpdateRoleInput{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.roles.EXPECT().UpdateRole(ctx, admin.ID, input).Return(&entity.UserRole{UserID: input.UserID, Role: entity.RoleAdmin}, nil)
	fx.dashboard.EXPECT().Invalidate().Once()

	role, err := fx.facade.For(admin).AssignRole(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role.Role)
}

func TestScope_AssignRole_FailureKeepsCache(t *testing.T) {
	fx := createTestFacade(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New()}
	input := &usecase.UpdateRoleInput{UserID: uuid.New(), Role: entity.RoleUser}

	fx.roles.EXPECT().UpdateRole(ctx, admin.ID, input).Return(nil, domainerrors.ErrForbidden)

	_, err := fx.facade.For(admin).AssignRole(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
