package impl

import (
	"context"
	"testing"
	"time"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	mockRepo "swapmarket/internal/mocks/repository"
	mockSvc "swapmarket/internal/mocks/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userRoleServiceFixtures struct {
	service   usecase.UserRoleUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	roleRepo  *mockRepo.MockUserRoleRepository
	txRoles   *mockRepo.MockUserRoleRepository
	userRepo  *mockRepo.MockUserRepository
	notifier  *mockSvc.MockRoleChangeNotifier
}

func createTestUserRoleService(t *testing.T) userRoleServiceFixtures {
	fx := userRoleServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		roleRepo:  mockRepo.NewMockUserRoleRepository(t),
		txRoles:   mockRepo.NewMockUserRoleRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		notifier:  mockSvc.NewMockRoleChangeNotifier(t),
	}
	fx.factory.EXPECT().NewUserRoleRepository().Return(fx.txRoles).Maybe()

	fx.service = NewUserRoleService(UserRoleServiceParams{
		TxManager: fx.txManager,
		RoleRepo:  fx.roleRepo,
		UserRepo:  fx.userRepo,
		Notifier:  fx.notifier,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})

	return fx
}

// expectAdmin makes actorID resolve to role on the primary.
func (fx userRoleServiceFixtures) expectAdmin(actorID uuid.UUID, role entity.Role) {
	expectTx(fx.txManager, fx.factory)
	fx.txRoles.EXPECT().FindByUserID(mock.Anything, actorID).Return(&entity.UserRole{UserID: actorID, Role: role}, nil)
}

func TestUserRoleService_EnsureSuperAdmin_GrantsAndPublishes(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ROOT@swapmarket.test"}

	fx.roleRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrUserRoleNotFound)
	fx.roleRepo.EXPECT().
		Upsert(ctx, user.ID, entity.RoleAdmin, (*time.Time)(nil)).
		Return(&entity.UserRole{UserID: user.ID, Role: entity.RoleAdmin}, nil)
	fx.notifier.EXPECT().
		PublishRoleChange(ctx, mock.MatchedBy(func(change entity.RoleChange) bool {
			return change.UserID == user.ID && change.Role == entity.RoleAdmin
		})).
		Return(nil)

	require.NoError(t, fx.service.EnsureSuperAdmin(ctx, user))
}

func TestUserRoleService_EnsureSuperAdmin_AlreadyAdminIsQuiet(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "root@swapmarket.test"}

	fx.roleRepo.EXPECT().FindByUserID(ctx, user.ID).Return(&entity.UserRole{UserID: user.ID, Role: entity.RoleAdmin}, nil)
	fx.roleRepo.EXPECT().
		Upsert(ctx, user.ID, entity.RoleAdmin, (*time.Time)(nil)).
		Return(&entity.UserRole{UserID: user.ID, Role: entity.RoleAdmin}, nil)

	require.NoError(t, fx.service.EnsureSuperAdmin(ctx, user))
}

func TestUserRoleService_EnsureSuperAdmin_OtherIdentityUntouched(t *testing.T) {
	fx := createTestUserRoleService(t)

	require.NoError(t, fx.service.EnsureSuperAdmin(context.Background(), &entity.User{ID: uuid.New(), Email: "bob@example.com"}))
	require.NoError(t, fx.service.EnsureSuperAdmin(context.Background(), nil))
}

func TestUserRoleService_GetCurrentRole_DefaultsToUser(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	missing, broken := uuid.New(), uuid.New()

	fx.roleRepo.EXPECT().FindByUserID(ctx, missing).Return(nil, repository.ErrUserRoleNotFound)
	fx.roleRepo.EXPECT().FindByUserID(ctx, broken).Return(nil, errors.New("connection reset"))

	assert.Equal(t, entity.RoleUser, fx.service.GetCurrentRole(ctx, missing))
	assert.Equal(t, entity.RoleUser, fx.service.GetCurrentRole(ctx, broken))
}

func TestUserRoleService_IsAdmin_FailsClosed(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("primary unavailable"))

	isAdmin, err := fx.service.IsAdmin(ctx, uuid.New())

	require.Error(t, err)
	assert.False(t, isAdmin)
}

func TestUserRoleService_ListRoles_Forbidden(t *testing.T) {
	fx := createTestUserRoleService(t)
	actorID := uuid.New()
	fx.expectAdmin(actorID, entity.RoleUser)

	roles, err := fx.service.ListRoles(context.Background(), actorID)

	assert.Nil(t, roles)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestUserRoleService_ListRoles_Unauthenticated(t *testing.T) {
	fx := createTestUserRoleService(t)

	_, err := fx.service.ListRoles(context.Background(), uuid.Nil)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserRoleService_UpdateRole_Success(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	actorID, targetID := uuid.New(), uuid.New()
	fx.expectAdmin(actorID, entity.RoleAdmin)

	updated := &entity.UserRole{UserID: targetID, Role: entity.RoleAdmin}
	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
	fx.roleRepo.EXPECT().Upsert(ctx, targetID, entity.RoleAdmin, (*time.Time)(nil)).Return(updated, nil)
	fx.notifier.EXPECT().
		PublishRoleChange(ctx, mock.MatchedBy(func(change entity.RoleChange) bool {
			return change.UserID == targetID && change.ChangedBy == actorID
		})).
		Return(errors.New("hub closed"))

	role, err := fx.service.UpdateRole(ctx, actorID, &usecase.UpdateRoleInput{UserID: targetID, Role: entity.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, updated, role)
}

func TestUserRoleService_UpdateRole_StaleToken(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	actorID, targetID := uuid.New(), uuid.New()
	seen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fx.expectAdmin(actorID, entity.RoleAdmin)

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
	fx.roleRepo.EXPECT().Upsert(ctx, targetID, entity.RoleUser, &seen).Return(nil, repository.ErrUserRoleStale)

	_, err := fx.service.UpdateRole(ctx, actorID, &usecase.UpdateRoleInput{
		UserID:            targetID,
		Role:              entity.RoleUser,
		ExpectedUpdatedAt: &seen,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestUserRoleService_UpdateRole_UnknownUser(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	actorID, targetID := uuid.New(), uuid.New()
	fx.expectAdmin(actorID, entity.RoleAdmin)

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateRole(ctx, actorID, &usecase.UpdateRoleInput{UserID: targetID, Role: entity.RoleAdmin})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	fx.roleRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.notifier.AssertNotCalled(t, "PublishRoleChange", mock.Anything, mock.Anything)
}

func TestUserRoleService_UpdateRole_InvalidRole(t *testing.T) {
	fx := createTestUserRoleService(t)

	_, err := fx.service.UpdateRole(context.Background(), uuid.New(), &usecase.UpdateRoleInput{
		UserID: uuid.New(),
		Role:   entity.Role("moderator"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestUserRoleService_WatchRole(t *testing.T) {
	fx := createTestUserRoleService(t)
	ctx := context.Background()
	userID := uuid.New()
	watch := mockSvc.NewMockRoleWatch(t)

	fx.notifier.EXPECT().Watch(ctx, userID, "session").Return(watch, nil)

	got, err := fx.service.WatchRole(ctx, userID, "session")
	require.NoError(t, err)
	assert.Same(t, watch, got)

	_, err = fx.service.WatchRole(ctx, uuid.Nil, "session")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
