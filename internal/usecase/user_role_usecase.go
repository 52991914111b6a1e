package usecase

import (
	"context"
	"time"

	"swapmarket/internal/domain/entity"
	"swapmarket/internal/domain/service"

	"github.com/google/uuid"
)

// UpdateRoleInput assigns a role. ExpectedUpdatedAt enables an optimistic check.
type UpdateRoleInput struct {
	UserID            uuid.UUID
	Role              entity.Role
	ExpectedUpdatedAt *time.Time
}

// UserRoleUsecase is the role gate of the admin area.
type UserRoleUsecase interface {
	// EnsureSuperAdmin grants admin to the configured super-admin email. It is safe to run
	// concurrently and on every sign-in.
	EnsureSuperAdmin(ctx context.Context, user *entity.User) error

	// GetCurrentRole returns the stored role, or user when none is stored or the read fails.
	GetCurrentRole(ctx context.Context, userID uuid.UUID) entity.Role

	// IsAdmin reads the role from the primary and reports whether it is admin.
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)

	// ListRoles returns every role row. The actor must be admin.
	ListRoles(ctx context.Context, actorID uuid.UUID) ([]*entity.UserRole, error)

	// UpdateRole assigns a role and notifies watchers. The actor must be admin.
	UpdateRole(ctx context.Context, actorID uuid.UUID, input *UpdateRoleInput) (*entity.UserRole, error)

	// WatchRole subscribes to role changes of userID under name.
	WatchRole(ctx context.Context, userID uuid.UUID, name string) (service.RoleWatch, error)
}
