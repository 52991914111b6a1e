package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	mockUsecase "swapmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	service     *dashboardService
	productRepo *mockRepo.MockProductRepository
	roleRepo    *mockRepo.MockUserRoleRepository
	swapRepo    *mockRepo.MockSwapRequestRepository
	userRepo    *mockRepo.MockUserRepository
	swaps       *mockUsecase.MockSwapRequestUsecase
	db          *mockRepo.MockHealthChecker
	storage     *mockSvc.MockObjectStorage
	tokens      *mockSvc.MockTokenService
	metrics     *metrics.Metrics
	clock       *time.Time
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	fx := dashboardServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		roleRepo:    mockRepo.NewMockUserRoleRepository(t),
		swapRepo:    mockRepo.NewMockSwapRequestRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		swaps:       mockUsecase.NewMockSwapRequestUsecase(t),
		db:          mockRepo.NewMockHealthChecker(t),
		storage:     mockSvc.NewMockObjectStorage(t),
		tokens:      mockSvc.NewMockTokenService(t),
		metrics:     metrics.New(),
		clock:       &now,
	}

	svc := NewDashboardService(DashboardServiceParams{
		ProductRepo: fx.productRepo,
		RoleRepo:    fx.roleRepo,
		SwapRepo:    fx.swapRepo,
		UserRepo:    fx.userRepo,
		Swaps:       fx.swaps,
		DB:          fx.db,
		Storage:     fx.storage,
		Tokens:      fx.tokens,
		Metrics:     fx.metrics,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	}).(*dashboardService)
	svc.now = func() time.Time { return *fx.clock }
	fx.service = svc

	return fx
}

func (fx dashboardServiceFixtures) advance(d time.Duration) {
	*fx.clock = fx.clock.Add(d)
}

// expectReload stubs one full reload for actorID.
func (fx dashboardServiceFixtures) expectReload(actorID uuid.UUID) {
	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{}).Return([]*entity.Product{{ID: uuid.New()}}, nil).Once()
	fx.roleRepo.EXPECT().List(mock.Anything).Return([]*entity.UserRole{{UserID: actorID, Role: entity.RoleAdmin}}, nil).Once()
	fx.swaps.EXPECT().ListSwapRequests(mock.Anything, actorID).Return(&entity.SwapRequestBundle{}, nil).Once()
}

func TestDashboardService_FetchAll_ServesCacheWithinWindow(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()
	fx.expectReload(actorID)

	first, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)
	assert.Equal(t, *fx.clock, first.FetchedAt)

	fx.advance(4*time.Minute + 59*time.Second)
	second, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DashboardCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DashboardCache.WithLabelValues("miss")), 0)
}

func TestDashboardService_FetchAll_ReloadsAfterWindow(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()
	fx.expectReload(actorID)
	fx.expectReload(actorID)

	first, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)

	fx.advance(5 * time.Minute)
	second, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.True(t, second.FetchedAt.After(first.FetchedAt))
}

func TestDashboardService_FetchAll_ForceBypassesCache(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()
	fx.expectReload(actorID)
	fx.expectReload(actorID)

	_, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)

	_, err = fx.service.FetchAll(ctx, actorID, true)
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DashboardCache.WithLabelValues("forced")), 0)
}

func TestDashboardService_FetchAll_FailureYieldsNoPartialData(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()

	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{}).Return([]*entity.Product{{ID: uuid.New()}}, nil).Maybe()
	fx.roleRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("permission denied for table user_roles"))
	fx.swaps.EXPECT().ListSwapRequests(mock.Anything, actorID).Return(&entity.SwapRequestBundle{}, nil).Maybe()

	bundle, err := fx.service.FetchAll(ctx, actorID, false)

	assert.Nil(t, bundle)
	assert.True(t, errors.Is(err, domainerrors.ErrDataUnavailable))
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DashboardFetchErr.WithLabelValues("user_roles")), 0)
	assert.Empty(t, fx.service.cache)
}

func TestDashboardService_FetchAll_CachesPerIdentity(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	fx.expectReload(alice)
	fx.expectReload(bob)

	_, err := fx.service.FetchAll(ctx, alice, false)
	require.NoError(t, err)
	_, err = fx.service.FetchAll(ctx, bob, false)
	require.NoError(t, err)

	assert.Len(t, fx.service.cache, 2)
}

func TestDashboardService_Invalidate(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()
	fx.expectReload(actorID)
	fx.expectReload(actorID)

	_, err := fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)

	fx.service.Invalidate()

	_, err = fx.service.FetchAll(ctx, actorID, false)
	require.NoError(t, err)
}

func TestDashboardService_Invalidate_DiscardsReloadInFlight(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()

	started := make(chan struct{})
	release := make(chan struct{})
	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{}).
		RunAndReturn(func(context.Context, entity.ProductFilter) ([]*entity.Product, error) {
			close(started)
			<-release

			return nil, nil
		}).Once()
	fx.roleRepo.EXPECT().List(mock.Anything).Return([]*entity.UserRole{{UserID: actorID, Role: entity.RoleUser}}, nil).Once()
	fx.swaps.EXPECT().ListSwapRequests(mock.Anything, actorID).Return(&entity.SwapRequestBundle{}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.FetchAll(ctx, actorID, false)
		done <- err
	}()

	<-started
	fx.service.Invalidate()
	close(release)
	require.NoError(t, <-done)
	assert.Empty(t, fx.service.cache, "a reload started before Invalidate must not be cached")

	fx.expectReload(actorID)
	bundle, err := fx.service.FetchAll(ctx, actorID, false)

	require.NoError(t, err)
	require.Len(t, bundle.UserRoles, 1)
	assert.Equal(t, entity.RoleAdmin, bundle.UserRoles[0].Role)
}

func TestDashboardService_FetchAll_ConcurrentColdCallsShareOneReload(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actorID := uuid.New()
	const callers = 8

	release := make(chan struct{})
	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{}).
		RunAndReturn(func(context.Context, entity.ProductFilter) ([]*entity.Product, error) {
			<-release

			return []*entity.Product{{ID: uuid.New()}}, nil
		}).Once()
	fx.roleRepo.EXPECT().List(mock.Anything).Return([]*entity.UserRole{}, nil).Once()
	fx.swaps.EXPECT().ListSwapRequests(mock.Anything, actorID).Return(&entity.SwapRequestBundle{}, nil).Once()

	var wg sync.WaitGroup
	bundles := make([]*entity.DashboardBundle, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bundles[i], errs[i] = fx.service.FetchAll(ctx, actorID, false)
		}()
	}

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(fx.metrics.DashboardCache.WithLabelValues("miss")) == callers
	}, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, bundles[0], bundles[i])
	}
}

func TestDashboardService_FetchAll_LeaderCancelDoesNotFailJoinedCallers(t *testing.T) {
	fx := createTestDashboardService(t)
	actorID := uuid.New()

	started := make(chan struct{})
	release := make(chan struct{})
	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{}).
		RunAndReturn(func(ctx context.Context, _ entity.ProductFilter) ([]*entity.Product, error) {
			close(started)
			<-release

			return nil, ctx.Err()
		}).Once()
	fx.roleRepo.EXPECT().List(mock.Anything).Return([]*entity.UserRole{}, nil).Once()
	fx.swaps.EXPECT().ListSwapRequests(mock.Anything, actorID).Return(&entity.SwapRequestBundle{}, nil).Once()

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := fx.service.FetchAll(leaderCtx, actorID, false)
		leaderDone <- err
	}()
	<-started

	joinedDone := make(chan error, 1)
	go func() {
		_, err := fx.service.FetchAll(context.Background(), actorID, false)
		joinedDone <- err
	}()
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(fx.metrics.DashboardCache.WithLabelValues("miss")) == 2
	}, time.Second, time.Millisecond)

	cancel()
	assert.True(t, errors.Is(<-leaderDone, domainerrors.ErrDataUnavailable))

	close(release)
	require.NoError(t, <-joinedDone)
	assert.Len(t, fx.service.cache, 1)
}

func TestDashboardService_FetchAll_Unauthenticated(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.FetchAll(context.Background(), uuid.Nil, false)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestDashboardService_Stats(t *testing.T) {
	fx := createTestDashboardService(t)

	fx.productRepo.EXPECT().CountByStatus(mock.Anything, entity.ProductStatus("")).Return(12, nil)
	fx.productRepo.EXPECT().CountByStatus(mock.Anything, entity.ProductAvailable).Return(7, nil)
	fx.userRepo.EXPECT().Count(mock.Anything).Return(4, nil)
	fx.swapRepo.EXPECT().CountByStatus(mock.Anything, entity.SwapPending).Return(2, nil)

	stats, err := fx.service.Stats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, &entity.MarketStats{TotalProducts: 12, AvailableProducts: 7, TotalUsers: 4, PendingSwaps: 2}, stats)
}

func TestDashboardService_Stats_Failure(t *testing.T) {
	fx := createTestDashboardService(t)

	fx.productRepo.EXPECT().CountByStatus(mock.Anything, mock.Anything).Return(0, errors.New("timeout")).Maybe()
	fx.userRepo.EXPECT().Count(mock.Anything).Return(0, nil).Maybe()
	fx.swapRepo.EXPECT().CountByStatus(mock.Anything, mock.Anything).Return(0, nil).Maybe()

	stats, err := fx.service.Stats(context.Background(), uuid.New())

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrDataUnavailable))
}

func TestBuildAnalytics(t *testing.T) {
	products := []*entity.Product{
		{Name: "a", Category: entity.CategoryLaptops, Status: entity.ProductAvailable, Price: decimal.NewFromInt(100)},
		{Name: "b", Category: entity.CategoryLaptops, Status: entity.ProductSold, Price: decimal.NewFromInt(900)},
		{Name: "c", Category: entity.CategoryTVs, Status: entity.ProductAvailable, Price: decimal.NewFromInt(400)},
	}

	analytics := buildAnalytics(products)

	require.Len(t, analytics.ByCategory, len(entity.Categories()))
	assert.Equal(t, entity.CountEntry{Key: "smartphones", Count: 0}, analytics.ByCategory[0])
	assert.Equal(t, entity.CountEntry{Key: "laptops", Count: 2}, analytics.ByCategory[1])
	assert.Equal(t, []entity.CountEntry{
		{Key: "available", Count: 2},
		{Key: "sold", Count: 1},
		{Key: "swapped", Count: 0},
	}, analytics.ByStatus)
	require.Len(t, analytics.TopByPrice, 3)
	assert.Equal(t, "b", analytics.TopByPrice[0].Name)
	assert.Equal(t, "a", analytics.TopByPrice[2].Name)
	assert.Equal(t, "a", products[0].Name)
}

func TestMergeActivity(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		{ID: uuid.New(), Name: "old listing", CreatedAt: base},
		{ID: uuid.New(), Name: "new listing", CreatedAt: base.Add(3 * time.Hour)},
	}
	swaps := []*entity.SwapRequest{
		{ID: uuid.New(), CreatedAt: base.Add(time.Hour), Product: &entity.Product{Name: "Switch"}},
		{ID: uuid.New(), CreatedAt: base.Add(2 * time.Hour)},
	}

	feed := mergeActivity(products, swaps, 3)

	require.Len(t, feed, 3)
	assert.Equal(t, "new listing", feed[0].Summary)
	assert.Equal(t, entity.ActivitySwapRequested, feed[1].Kind)
	assert.Equal(t, "swap request", feed[1].Summary)
	assert.Equal(t, "Switch", feed[2].Summary)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	fx := createTestDashboardService(t)

	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{Limit: activityFeedSize}).Return([]*entity.Product{{ID: uuid.New()}}, nil)
	fx.swapRepo.EXPECT().ListRecent(mock.Anything, activityFeedSize).Return(nil, nil)

	feed, err := fx.service.RecentActivity(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestDashboardService_Health(t *testing.T) {
	fx := createTestDashboardService(t)

	fx.db.EXPECT().Ping(mock.Anything).Return(nil)
	fx.storage.EXPECT().Ping(mock.Anything).Return(errors.New("bucket missing"))
	fx.tokens.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), "", []string(nil)).Return("probe", "", nil)
	fx.tokens.EXPECT().ValidateAccessToken("probe").Return(&service.Claims{}, nil)

	checks := fx.service.Health(context.Background())

	require.Len(t, checks, 3)
	assert.Equal(t, "database", checks[0].Name)
	assert.True(t, checks[0].Healthy)
	assert.False(t, checks[1].Healthy)
	assert.Equal(t, "bucket missing", checks[1].Error)
	assert.True(t, checks[2].Healthy)
}
