package main

import (
	"context"
	"log/slog"
	"os"

	"swapmarket/config"
	"swapmarket/internal/delivery"
	"swapmarket/internal/delivery/api"
	"swapmarket/internal/delivery/api/middleware"
	"swapmarket/internal/delivery/api/router/handler"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/infra/auth"
	"swapmarket/internal/infra/auth/google"
	logs "swapmarket/internal/infra/log"
	"swapmarket/internal/infra/metrics"
	"swapmarket/internal/infra/persistence/postgres"
	"swapmarket/internal/infra/pubsub"
	"swapmarket/internal/infra/qrcode"
	"swapmarket/internal/infra/realtime"
	"swapmarket/internal/infra/storage"
	"swapmarket/internal/market"
	"swapmarket/internal/session"
	"swapmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewHealthChecker,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewUserRoleRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewSwapRequestRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewFromConfig,
			storage.NewBlobStorage,
			pubsub.NewEventPublisher,
			fx.Annotate(
				realtime.NewHub,
				fx.As(new(service.RoleChangeNotifier)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserRoleService,
			impl.NewProfileService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewSwapRequestService,
			impl.NewDashboardService,
			impl.NewDeviceService,
			market.NewFacade,
			session.NewManager,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewInFlight,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewProductHandler,
			handler.NewImageHandler,
			handler.NewProfileHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewSwapHandler,
			handler.NewRoleHandler,
			handler.NewDashboardHandler,
			handler.NewDeviceHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
