package impl

import (
	"context"
	"testing"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	mockRepo "swapmarket/internal/mocks/repository"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Upserts(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.Platform == entity.PlatformIOS && d.IsActive
		})).
		RunAndReturn(func(_ context.Context, d *entity.UserDevice) (*entity.UserDevice, error) {
			return d, nil
		})

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "nil input", info: nil},
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{name: "missing device id", info: &usecase.DeviceInfo{FCMToken: "t", Platform: "ios"}},
		{name: "unknown platform", info: &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)

			assert.Nil(t, device)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "t",
		DeviceID: "d",
		Platform: "android",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert device")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformWeb},
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformAndroid},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		userID, deviceID := uuid.New(), uuid.New()

		fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(context.Background(), userID, deviceID))
	})

	t.Run("foreign device is not found", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(context.Background(), uuid.New(), uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}
