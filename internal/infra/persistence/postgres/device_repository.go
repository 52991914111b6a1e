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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertDevice registers a device or refreshes its push token, keyed by (user_id, device_id).
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	now := time.Now()
	deviceM := &model.UserDeviceModel{
		ID:        uuid.New(),
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("missing required device information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	var stored model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND device_id = ?", device.UserID, device.DeviceID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	return toDeviceDomain(&stored), nil
}

// FindDevicesByUser lists a user's registered devices.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindActiveTokensByUsers returns the push tokens of every active device of the given users.
func (repo *deviceRepository) FindActiveTokensByUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error) {
	if len(userIDs) == 0 {
		return []string{}, nil
	}

	var tokens []string
	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Distinct().
		Pluck("fcm_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens")
	}

	return tokens, nil
}

// DeactivateDevice turns off notifications for a device owned by userID.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateTokens turns off every device holding one of the given push tokens.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate tokens")
	}

	return nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
