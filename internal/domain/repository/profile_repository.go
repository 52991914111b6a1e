package repository

import (
	"context"
	"errors"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// FindOrCreate inserts defaults if no profile exists for defaults.ID, then returns the stored row.
	// Concurrent callers observe the same single row.
	FindOrCreate(ctx context.Context, defaults *entity.Profile) (*entity.Profile, error)

	// FindByID retrieves a profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Update applies the non-nil fields and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, update entity.ProfileUpdate) (*entity.Profile, error)
}
