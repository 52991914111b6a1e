package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"swapmarket/config"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/metrics"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultFreshnessWindow = 5 * time.Minute
	activityFeedSize       = 5
	topProductsSize        = 5
	healthProbeTimeout     = 3 * time.Second
	reloadTimeout          = 30 * time.Second
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	productRepo repository.ProductRepository
	roleRepo    repository.UserRoleRepository
	swapRepo    repository.SwapRequestRepository
	userRepo    repository.UserRepository
	swaps       usecase.SwapRequestUsecase
	db          repository.HealthChecker
	storage     service.ObjectStorage
	tokens      service.TokenService
	metrics     *metrics.Metrics
	window      time.Duration
	now         func() time.Time
	logger      *slog.Logger

	mu         sync.Mutex
	cache      map[uuid.UUID]*entity.DashboardBundle
	generation uint64
	flight     singleflight.Group
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	RoleRepo    repository.UserRoleRepository
	SwapRepo    repository.SwapRequestRepository
	UserRepo    repository.UserRepository
	Swaps       usecase.SwapRequestUsecase
	DB          repository.HealthChecker
	Storage     service.ObjectStorage
	Tokens      service.TokenService
	Metrics     *metrics.Metrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	window := defaultFreshnessWindow
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.FreshnessWindow > 0 {
		window = params.Config.Cache.FreshnessWindow
	}

	return &dashboardService{
		productRepo: params.ProductRepo,
		roleRepo:    params.RoleRepo,
		swapRepo:    params.SwapRepo,
		userRepo:    params.UserRepo,
		swaps:       params.Swaps,
		db:          params.DB,
		storage:     params.Storage,
		tokens:      params.Tokens,
		metrics:     params.Metrics,
		window:      window,
		now:         time.Now,
		logger:      params.Logger,
		cache:       make(map[uuid.UUID]*entity.DashboardBundle),
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dashboardService) countLookup(result string) {
	if srv.metrics != nil {
		srv.metrics.DashboardCache.WithLabelValues(result).Inc()
	}
}

func (srv *dashboardService) countFetchError(entityName string) {
	if srv.metrics != nil {
		srv.metrics.DashboardFetchErr.WithLabelValues(entityName).Inc()
	}
}

// cached returns a fresh bundle for actorID, or nil with the generation a reload must store under.
func (srv *dashboardService) cached(actorID uuid.UUID) (*entity.DashboardBundle, uint64) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	bundle := srv.cache[actorID]
	if !bundle.IsFresh(srv.now(), srv.window) {
		return nil, srv.generation
	}

	return bundle, srv.generation
}

// FetchAll serves a fresh cached bundle or reloads all three entity sets in parallel.
// Concurrent reloads for the same identity share one set of queries.
func (srv *dashboardService) FetchAll(ctx context.Context, actorID uuid.UUID, force bool) (*entity.DashboardBundle, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	bundle, generation := srv.cached(actorID)
	switch {
	case force:
		srv.countLookup("forced")
	case bundle != nil:
		srv.countLookup("hit")

		return bundle, nil
	default:
		srv.countLookup("miss")
	}

	// Callers arriving after Invalidate never join a reload started before it.
	key := fmt.Sprintf("%s/%d", actorID, generation)
	flightCtx := context.WithoutCancel(ctx)
	results := srv.flight.DoChan(key, func() (any, error) {
		// A reload that finished just before this flight started already filled the cache.
		if fresh, current := srv.cached(actorID); !force && fresh != nil && current == generation {
			return fresh, nil
		}

		reloadCtx, cancel := context.WithTimeout(flightCtx, reloadTimeout)
		defer cancel()

		return srv.reload(reloadCtx, actorID, generation)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(domainerrors.ErrDataUnavailable, ctx.Err().Error())
	case result = <-results:
	}
	if result.Err != nil {
		srv.log(ctx).Error("Dashboard fetch failed", slog.Any("actorID", actorID), slog.Any("error", result.Err))

		return nil, errors.Wrap(domainerrors.ErrDataUnavailable, result.Err.Error())
	}
	if result.Shared {
		srv.log(ctx).Debug("Dashboard fetch joined an in-flight reload", slog.Any("actorID", actorID))
	}

	return result.Val.(*entity.DashboardBundle), nil
}

// reload queries all three entity sets. The bundle is cached only while generation is still current.
func (srv *dashboardService) reload(ctx context.Context, actorID uuid.UUID, generation uint64) (*entity.DashboardBundle, error) {
	startedAt := srv.now()
	bundle := &entity.DashboardBundle{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := srv.productRepo.List(gctx, entity.ProductFilter{})
		if err != nil {
			srv.countFetchError("products")

			return errors.Wrap(err, "failed to load products")
		}
		bundle.Products = products

		return nil
	})
	g.Go(func() error {
		roles, err := srv.roleRepo.List(gctx)
		if err != nil {
			srv.countFetchError("user_roles")

			return errors.Wrap(err, "failed to load user roles")
		}
		bundle.UserRoles = roles

		return nil
	})
	g.Go(func() error {
		swaps, err := srv.swaps.ListSwapRequests(gctx, actorID)
		if err != nil {
			srv.countFetchError("swap_requests")

			return errors.Wrap(err, "failed to load swap requests")
		}
		bundle.SwapRequests = swaps

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle.FetchedAt = startedAt

	srv.mu.Lock()
	if srv.generation == generation {
		srv.cache[actorID] = bundle
	}
	srv.mu.Unlock()

	return bundle, nil
}

// Invalidate drops every cached bundle and discards reloads still in flight.
func (srv *dashboardService) Invalidate() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	clear(srv.cache)
}

// Stats computes the admin headline counters.
func (srv *dashboardService) Stats(ctx context.Context, actorID uuid.UUID) (*entity.MarketStats, error) {
	stats := &entity.MarketStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalProducts, err = srv.productRepo.CountByStatus(gctx, "")

		return errors.Wrap(err, "failed to count products")
	})
	g.Go(func() (err error) {
		stats.AvailableProducts, err = srv.productRepo.CountByStatus(gctx, entity.ProductAvailable)

		return errors.Wrap(err, "failed to count available products")
	})
	g.Go(func() (err error) {
		stats.TotalUsers, err = srv.userRepo.Count(gctx)

		return errors.Wrap(err, "failed to count users")
	})
	g.Go(func() (err error) {
		stats.PendingSwaps, err = srv.swapRepo.CountByStatus(gctx, entity.SwapPending)

		return errors.Wrap(err, "failed to count pending swaps")
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compute stats", slog.Any("actorID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrDataUnavailable, err.Error())
	}

	return stats, nil
}

// Analytics groups the cached product set by category and status and picks the priciest listings.
func (srv *dashboardService) Analytics(ctx context.Context, actorID uuid.UUID) (*entity.MarketAnalytics, error) {
	bundle, err := srv.FetchAll(ctx, actorID, false)
	if err != nil {
		return nil, err
	}

	return buildAnalytics(bundle.Products), nil
}

func buildAnalytics(products []*entity.Product) *entity.MarketAnalytics {
	byCategory := make(map[string]int)
	byStatus := make(map[string]int)
	for _, product := range products {
		byCategory[string(product.Category)]++
		byStatus[string(product.Status)]++
	}

	analytics := &entity.MarketAnalytics{
		ByCategory: make([]entity.CountEntry, 0, len(entity.Categories())),
		ByStatus:   make([]entity.CountEntry, 0, 3),
	}
	for _, category := range entity.Categories() {
		analytics.ByCategory = append(analytics.ByCategory, entity.CountEntry{Key: string(category), Count: byCategory[string(category)]})
	}
	for _, status := range []entity.ProductStatus{entity.ProductAvailable, entity.ProductSold, entity.ProductSwapped} {
		analytics.ByStatus = append(analytics.ByStatus, entity.CountEntry{Key: string(status), Count: byStatus[string(status)]})
	}

	top := slices.Clone(products)
	slices.SortStableFunc(top, func(a, b *entity.Product) int {
		return b.Price.Cmp(a.Price)
	})
	analytics.TopByPrice = top[:min(topProductsSize, len(top))]

	return analytics
}

// RecentActivity merges the newest listings and swap requests into one feed.
func (srv *dashboardService) RecentActivity(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityEntry, error) {
	var (
		products []*entity.Product
		swaps    []*entity.SwapRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = srv.productRepo.List(gctx, entity.ProductFilter{Limit: activityFeedSize})

		return errors.Wrap(err, "failed to load recent products")
	})
	g.Go(func() (err error) {
		swaps, err = srv.swapRepo.ListRecent(gctx, activityFeedSize)

		return errors.Wrap(err, "failed to load recent swap requests")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load recent activity", slog.Any("actorID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrDataUnavailable, err.Error())
	}

	return mergeActivity(products, swaps, activityFeedSize), nil
}

func mergeActivity(products []*entity.Product, swaps []*entity.SwapRequest, limit int) []*entity.ActivityEntry {
	entries := make([]*entity.ActivityEntry, 0, len(products)+len(swaps))
	for _, product := range products {
		entries = append(entries, &entity.ActivityEntry{
			Kind:      entity.ActivityProductListed,
			SubjectID: product.ID,
			ActorID:   product.OwnerID,
			Summary:   product.Name,
			At:        product.CreatedAt,
		})
	}
	for _, swap := range swaps {
		summary := "swap request"
		if swap.Product != nil {
			summary = swap.Product.Name
		}
		entries = append(entries, &entity.ActivityEntry{
			Kind:      entity.ActivitySwapRequested,
			SubjectID: swap.ID,
			ActorID:   swap.RequesterID,
			Summary:   summary,
			At:        swap.CreatedAt,
		})
	}

	slices.SortStableFunc(entries, func(a, b *entity.ActivityEntry) int {
		return cmp.Compare(b.At.UnixNano(), a.At.UnixNano())
	})

	return entries[:min(limit, len(entries))]
}

// Health probes the database, the object store and the token service.
func (srv *dashboardService) Health(ctx context.Context) []*entity.HealthCheck {
	probes := []struct {
		name  string
		check func(context.Context) error
	}{
		{name: "database", check: srv.db.Ping},
		{name: "storage", check: srv.storage.Ping},
		{name: "auth", check: srv.checkTokens},
	}

	checks := make([]*entity.HealthCheck, len(probes))
	var wg sync.WaitGroup
	for i, probe := range probes {
		wg.Go(func() {
			probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
			defer cancel()

			start := srv.now()
			err := probe.check(probeCtx)
			check := &entity.HealthCheck{
				Name:    probe.name,
				Healthy: err == nil,
				Latency: srv.now().Sub(start),
			}
			if err != nil {
				check.Error = err.Error()
				srv.log(ctx).Warn("Health probe failed", slog.String("probe", probe.name), slog.Any("error", err))
			}
			checks[i] = check
		})
	}
	wg.Wait()

	return checks
}

// checkTokens round-trips a throwaway token through the signer.
func (srv *dashboardService) checkTokens(_ context.Context) error {
	access, _, err := srv.tokens.GenerateTokens(uuid.New(), "", nil)
	if err != nil {
		return errors.Wrap(err, "failed to sign probe token")
	}

	_, err = srv.tokens.ValidateAccessToken(access)

	return errors.Wrap(err, "failed to validate probe token")
}
