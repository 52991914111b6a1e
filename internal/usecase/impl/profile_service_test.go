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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, newDiscardLogger()),
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_CreatesDefault(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}
	stored := &entity.Profile{ID: user.ID, Email: user.Email}

	fx.profileRepo.EXPECT().
		FindOrCreate(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == user.ID && p.Email == user.Email && *p.FullName == "Alice"
		})).
		Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetProfile_Unauthenticated(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = fx.service.GetProfile(context.Background(), &entity.User{})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestProfileService_GetProfile_StoreError(t *testing.T) {
	fx := createTestProfileService(t)
	user := &entity.User{ID: uuid.New()}

	fx.profileRepo.EXPECT().FindOrCreate(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	profile, err := fx.service.GetProfile(context.Background(), user)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	phone := "+886900000000"

	tests := []struct {
		name    string
		input   entity.ProfileUpdate
		setup   func(fx profileServiceFixtures, userID uuid.UUID)
		wantErr error
	}{
		{
			name:  "applies supplied fields",
			input: entity.ProfileUpdate{Phone: &phone},
			setup: func(fx profileServiceFixtures, userID uuid.UUID) {
				fx.profileRepo.EXPECT().
					Update(mock.Anything, userID, entity.ProfileUpdate{Phone: &phone}).
					Return(&entity.Profile{ID: userID, Phone: &phone}, nil)
			},
		},
		{
			name:  "empty update reads the stored row",
			input: entity.ProfileUpdate{},
			setup: func(fx profileServiceFixtures, userID uuid.UUID) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.Profile{ID: userID}, nil)
			},
		},
		{
			name:  "missing row",
			input: entity.ProfileUpdate{Phone: &phone},
			setup: func(fx profileServiceFixtures, userID uuid.UUID) {
				fx.profileRepo.EXPECT().Update(mock.Anything, userID, mock.Anything).Return(nil, repository.ErrProfileNotFound)
			},
			wantErr: domainerrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			userID := uuid.New()
			tt.setup(fx, userID)

			profile, err := fx.service.UpdateProfile(context.Background(), userID, tt.input)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, profile.ID)
		})
	}
}
