package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase serves the admin console reads.
type DashboardUsecase interface {
	// FetchAll returns products, roles and swap requests together. A bundle younger than the
	// freshness window is served from memory unless force is set. Any failed read fails the
	// whole fetch; partial bundles are never returned.
	FetchAll(ctx context.Context, actorID uuid.UUID, force bool) (*entity.DashboardBundle, error)

	Stats(ctx context.Context, actorID uuid.UUID) (*entity.MarketStats, error)
	Analytics(ctx context.Context, actorID uuid.UUID) (*entity.MarketAnalytics, error)
	RecentActivity(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityEntry, error)
	Health(ctx context.Context) []*entity.HealthCheck

	// Invalidate drops every cached bundle.
	Invalidate()
}
