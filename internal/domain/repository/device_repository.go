// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device, reusing the row of the same user and client device ID.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveTokensByUsers returns FCM tokens of active devices of the given users.
	FindActiveTokensByUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error)

	// DeactivateDevice marks a user's device inactive.
	DeactivateDevice(ctx context.Context, userID, id uuid.UUID) error

	// DeactivateTokens marks every device carrying one of tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
