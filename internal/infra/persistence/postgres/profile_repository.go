package postgres

import (
	"context"
	"time"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindOrCreate inserts the default row unless one exists, then reads the stored row from the primary.
// ON CONFLICT DO NOTHING keeps concurrent first accesses from creating duplicates.
func (repo *profileRepository) FindOrCreate(ctx context.Context, defaults *entity.Profile) (*entity.Profile, error) {
	profileM := fromProfileDomain(defaults)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(profileM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create default profile")
	}

	return repo.findPrimary(ctx, defaults.ID)
}

// FindByID retrieves a profile.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Update applies the non-nil fields and returns the stored row.
func (repo *profileRepository) Update(ctx context.Context, id uuid.UUID, update entity.ProfileUpdate) (*entity.Profile, error) {
	if update.IsEmpty() {
		return repo.findPrimary(ctx, id)
	}

	changes := map[string]any{"updated_at": time.Now()}
	if update.FullName != nil {
		changes["full_name"] = *update.FullName
	}
	if update.AvatarURL != nil {
		changes["avatar_url"] = *update.AvatarURL
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return repo.findPrimary(ctx, id)
}

// findPrimary reads from the primary so a row written a moment ago is visible.
func (repo *profileRepository) findPrimary(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to read profile")
	}

	return toProfileDomain(&profileM), nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:        data.ID,
		Email:     data.Email,
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		Phone:     data.Phone,
		Location:  data.Location,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:        data.ID,
		Email:     data.Email,
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		Phone:     data.Phone,
		Location:  data.Location,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
