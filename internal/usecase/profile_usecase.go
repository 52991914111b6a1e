package usecase

import (
	"context"

	"swapmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase reads and edits the caller's profile.
type ProfileUsecase interface {
	// GetProfile returns the profile of user, creating the default row on first access.
	GetProfile(ctx context.Context, user *entity.User) (*entity.Profile, error)

	// UpdateProfile applies the non-nil fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input entity.ProfileUpdate) (*entity.Profile, error)
}
