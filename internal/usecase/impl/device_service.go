package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

func validPlatform(platform string) bool {
	switch platform {
	case entity.PlatformIOS, entity.PlatformAndroid, entity.PlatformWeb:
		return true
	default:
		return false
	}
}

// RegisterDevice registers a new device or refreshes the token of the same client device
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	platform := strings.ToLower(deviceInfo.Platform)
	if !validPlatform(platform) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	device, err := s.deviceRepo.UpsertDevice(ctx, &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: platform,
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	return device, nil
}

// GetUserDevices retrieves all devices of a user, including inactive ones
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete). Devices of other users are reported as not found
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.deviceRepo.DeactivateDevice(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}
