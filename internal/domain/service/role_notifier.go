package service

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleWatch is an owned subscription to one identity's role changes.
// Close is idempotent and must be called on every exit path.
type RoleWatch interface {
	Changes() <-chan entity.RoleChange
	Close()
}

// RoleChangeNotifier publishes role changes and hands out per-identity watches
type RoleChangeNotifier interface {
	// PublishRoleChange broadcasts a role assignment to all watchers of that identity
	PublishRoleChange(ctx context.Context, change entity.RoleChange) error

	// Watch subscribes to role changes of userID. Acquiring a watch with a name already
	// held for the same identity closes the previous one.
	Watch(ctx context.Context, userID uuid.UUID, name string) (RoleWatch, error)
}
