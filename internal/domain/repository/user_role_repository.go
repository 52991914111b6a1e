package repository

import (
	"context"
	"errors"
	"time"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserRoleNotFound is returned when a user has no role row.
	ErrUserRoleNotFound = errors.New("user role not found")
	// ErrUserRoleStale is returned when an optimistic update found a newer row.
	ErrUserRoleStale = errors.New("user role modified concurrently")
)

// UserRoleRepository persists role assignments. Each user has at most one row.
type UserRoleRepository interface {
	// FindByUserID retrieves the role row of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserRole, error)

	// List returns every role row, newest first.
	List(ctx context.Context) ([]*entity.UserRole, error)

	// Upsert creates the row or overwrites its role. When expectedUpdatedAt is set, an existing
	// row modified after it is left untouched and ErrUserRoleStale is returned.
	Upsert(ctx context.Context, userID uuid.UUID, role entity.Role, expectedUpdatedAt *time.Time) (*entity.UserRole, error)

	// CreateIfAbsent inserts a row with role unless one exists.
	CreateIfAbsent(ctx context.Context, userID uuid.UUID, role entity.Role) error
}
