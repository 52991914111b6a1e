// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile looks the profile up and creates the default row when it is missing.
// Two concurrent first reads observe the same single row.
func (srv *profileService) GetProfile(ctx context.Context, user *entity.User) (*entity.Profile, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := srv.profileRepo.FindOrCreate(ctx, entity.DefaultProfile(user))
	if err != nil {
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// UpdateProfile applies the supplied fields. An empty update returns the stored row unchanged.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input entity.ProfileUpdate) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var (
		profile *entity.Profile
		err     error
	)
	if input.IsEmpty() {
		profile, err = srv.profileRepo.FindByID(ctx, userID)
	} else {
		profile, err = srv.profileRepo.Update(ctx, userID, input)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return profile, nil
}
