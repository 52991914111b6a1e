// Package market composes the entity modules into one identity-bound surface.
package market

import (
	"context"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Facade gives handlers a single entry point to every module.
type Facade struct {
	products  usecase.ProductUsecase
	profiles  usecase.ProfileUsecase
	swaps     usecase.SwapRequestUsecase
	roles     usecase.UserRoleUsecase
	orders    usecase.OrderUsecase
	cart      usecase.CartUsecase
	dashboard usecase.DashboardUsecase
	devices   usecase.DeviceUsecase
}

// FacadeParams holds dependencies for Facade, injected by Fx
type FacadeParams struct {
	fx.In

	Products  usecase.ProductUsecase
	Profiles  usecase.ProfileUsecase
	Swaps     usecase.SwapRequestUsecase
	Roles     usecase.UserRoleUsecase
	Orders    usecase.OrderUsecase
	Cart      usecase.CartUsecase
	Dashboard usecase.DashboardUsecase
	Devices   usecase.DeviceUsecase
}

// NewFacade wires the modules together.
func NewFacade(params FacadeParams) *Facade {
	return &Facade{
		products:  params.Products,
		profiles:  params.Profiles,
		swaps:     params.Swaps,
		roles:     params.Roles,
		orders:    params.Orders,
		cart:      params.Cart,
		dashboard: params.Dashboard,
		devices:   params.Devices,
	}
}

// Catalog is the anonymous product surface.
func (f *Facade) Catalog() usecase.ProductUsecase {
	return f.products
}

// For binds every module to user. A nil user yields a scope whose writes fail with ErrUnauthenticated.
func (f *Facade) For(user *entity.User) *Scope {
	return &Scope{facade: f, user: user}
}

// Scope is the facade bound to one identity.
type Scope struct {
	facade *Facade
	user   *entity.User
}

// SessionView is the identity, its role and profile as seen by the client.
type SessionView struct {
	User    *entity.User
	Role    entity.Role
	Profile *entity.Profile
}

// UserID is uuid.Nil for an anonymous scope.
func (s *Scope) UserID() uuid.UUID {
	if s.user == nil {
		return uuid.Nil
	}

	return s.user.ID
}

// Session loads role and profile concurrently.
func (s *Scope) Session(ctx context.Context) (*SessionView, error) {
	if s.user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	view := &SessionView{User: s.user}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Role = s.facade.roles.GetCurrentRole(gctx, s.user.ID)

		return nil
	})
	g.Go(func() error {
		profile, err := s.facade.profiles.GetProfile(gctx, s.user)
		if err != nil {
			return err
		}
		view.Profile = profile

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

// --- Products ---

func (s *Scope) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	return s.facade.products.CreateProduct(ctx, s.UserID(), input)
}

func (s *Scope) UpdateProduct(ctx context.Context, id uuid.UUID, input entity.ProductUpdate) (*entity.Product, error) {
	return s.facade.products.UpdateProduct(ctx, s.UserID(), id, input)
}

func (s *Scope) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.facade.products.DeleteProduct(ctx, s.UserID(), id)
}

func (s *Scope) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	return s.facade.products.UploadImage(ctx, s.UserID(), input)
}

// MyProducts lists the listings owned by the identity.
func (s *Scope) MyProducts(ctx context.Context) ([]*entity.Product, error) {
	if s.user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return s.facade.products.ListProducts(ctx, entity.ProductFilter{OwnerID: s.user.ID})
}

// --- Profile ---

func (s *Scope) Profile(ctx context.Context) (*entity.Profile, error) {
	if s.user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return s.facade.profiles.GetProfile(ctx, s.user)
}

func (s *Scope) UpdateProfile(ctx context.Context, input entity.ProfileUpdate) (*entity.Profile, error) {
	return s.facade.profiles.UpdateProfile(ctx, s.UserID(), input)
}

// --- Swap requests ---

func (s *Scope) RequestSwap(ctx context.Context, productID uuid.UUID, message string) (*entity.SwapRequest, error) {
	return s.facade.swaps.CreateSwapRequest(ctx, s.UserID(), productID, message)
}

func (s *Scope) SwapRequests(ctx context.Context) (*entity.SwapRequestBundle, error) {
	return s.facade.swaps.ListSwapRequests(ctx, s.UserID())
}

func (s *Scope) ResolveSwap(ctx context.Context, id uuid.UUID, status entity.SwapStatus) (*entity.SwapRequest, error) {
	return s.facade.swaps.UpdateSwapStatus(ctx, s.UserID(), id, status)
}

// --- Roles ---

func (s *Scope) Role(ctx context.Context) entity.Role {
	return s.facade.roles.GetCurrentRole(ctx, s.UserID())
}

// IsAdmin re-reads the role from the primary.
func (s *Scope) IsAdmin(ctx context.Context) (bool, error) {
	return s.facade.roles.IsAdmin(ctx, s.UserID())
}

func (s *Scope) Roles(ctx context.Context) ([]*entity.UserRole, error) {
	return s.facade.roles.ListRoles(ctx, s.UserID())
}

// AssignRole drops the cached dashboards so the next admin read shows the new role.
func (s *Scope) AssignRole(ctx context.Context, input *usecase.UpdateRoleInput) (*entity.UserRole, error) {
	role, err := s.facade.roles.UpdateRole(ctx, s.UserID(), input)
	if err != nil {
		return nil, err
	}
	s.facade.dashboard.Invalidate()

	return role, nil
}

// --- Cart and orders ---

func (s *Scope) Cart(ctx context.Context) (*entity.CartView, error) {
	return s.facade.cart.ViewCart(ctx, s.UserID())
}

func (s *Scope) AddToCart(ctx context.Context, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	return s.facade.cart.AddItem(ctx, s.UserID(), productID, quantity)
}

func (s *Scope) SetCartQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	return s.facade.cart.SetQuantity(ctx, s.UserID(), itemID, quantity)
}

func (s *Scope) RemoveFromCart(ctx context.Context, itemID uuid.UUID) error {
	return s.facade.cart.RemoveItem(ctx, s.UserID(), itemID)
}

func (s *Scope) ClearCart(ctx context.Context) error {
	return s.facade.cart.ClearCart(ctx, s.UserID())
}

func (s *Scope) Checkout(ctx context.Context) (*entity.CheckoutResult, error) {
	return s.facade.orders.Checkout(ctx, s.UserID())
}

func (s *Scope) PlaceOrders(ctx context.Context, lines []usecase.OrderLine) (*entity.CheckoutResult, error) {
	return s.facade.orders.CreateOrders(ctx, s.UserID(), lines)
}

func (s *Scope) Orders(ctx context.Context) ([]*entity.Order, error) {
	return s.facade.orders.ListOrders(ctx, s.UserID())
}

// --- Devices ---

func (s *Scope) RegisterDevice(ctx context.Context, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	return s.facade.devices.RegisterDevice(ctx, s.UserID(), info)
}

func (s *Scope) Devices(ctx context.Context) ([]*entity.UserDevice, error) {
	return s.facade.devices.GetUserDevices(ctx, s.UserID())
}

func (s *Scope) DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error {
	return s.facade.devices.DeactivateDevice(ctx, s.UserID(), deviceID)
}

// --- Admin console ---

func (s *Scope) Dashboard(ctx context.Context, force bool) (*entity.DashboardBundle, error) {
	return s.facade.dashboard.FetchAll(ctx, s.UserID(), force)
}

func (s *Scope) Stats(ctx context.Context) (*entity.MarketStats, error) {
	return s.facade.dashboard.Stats(ctx, s.UserID())
}

func (s *Scope) Analytics(ctx context.Context) (*entity.MarketAnalytics, error) {
	return s.facade.dashboard.Analytics(ctx, s.UserID())
}

func (s *Scope) RecentActivity(ctx context.Context) ([]*entity.ActivityEntry, error) {
	return s.facade.dashboard.RecentActivity(ctx, s.UserID())
}

func (s *Scope) Health(ctx context.Context) []*entity.HealthCheck {
	return s.facade.dashboard.Health(ctx)
}
