package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"swapmarket/config"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/domain/service"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userRoleService implements the UserRoleUsecase interface.
type userRoleService struct {
	txManager       repository.TransactionManager
	roleRepo        repository.UserRoleRepository
	userRepo        repository.UserRepository
	notifier        service.RoleChangeNotifier
	superAdminEmail string
	now             func() time.Time
	logger          *slog.Logger
}

// UserRoleServiceParams holds dependencies for UserRoleService, injected by Fx.
type UserRoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.UserRoleRepository
	UserRepo  repository.UserRepository
	Notifier  service.RoleChangeNotifier
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserRoleService is the constructor for userRoleService.
func NewUserRoleService(params UserRoleServiceParams) usecase.UserRoleUsecase {
	superAdminEmail := ""
	if params.Config != nil && params.Config.Auth != nil {
		superAdminEmail = normalizeEmail(params.Config.Auth.SuperAdminEmail)
	}

	return &userRoleService{
		txManager:       params.TxManager,
		roleRepo:        params.RoleRepo,
		userRepo:        params.UserRepo,
		notifier:        params.Notifier,
		superAdminEmail: superAdminEmail,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *userRoleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureSuperAdmin upserts the admin row for the configured super-admin. Other identities are left alone.
func (srv *userRoleService) EnsureSuperAdmin(ctx context.Context, user *entity.User) error {
	if user == nil || srv.superAdminEmail == "" || !strings.EqualFold(strings.TrimSpace(user.Email), srv.superAdminEmail) {
		return nil
	}

	previous := srv.GetCurrentRole(ctx, user.ID)

	role, err := srv.roleRepo.Upsert(ctx, user.ID, entity.RoleAdmin, nil)
	if err != nil {
		return errors.Wrap(err, "failed to upsert super-admin role")
	}

	if previous != entity.RoleAdmin {
		srv.log(ctx).Info("Granted admin to super-admin identity", slog.Any("userID", user.ID))
		srv.publish(ctx, role, user.ID)
	}

	return nil
}

// GetCurrentRole never fails: a missing row or a read error yields RoleUser.
func (srv *userRoleService) GetCurrentRole(ctx context.Context, userID uuid.UUID) entity.Role {
	role, err := srv.roleRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserRoleNotFound) {
			srv.log(ctx).Warn("Failed to read role, defaulting to user", slog.Any("userID", userID), slog.Any("error", err))
		}

		return entity.RoleUser
	}

	return role.Role
}

// IsAdmin reads from the primary. Unlike GetCurrentRole it reports read failures so the gate fails closed.
func (srv *userRoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var role *entity.UserRole

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		role, err = repoFactory.NewUserRoleRepository().FindByUserID(ctx, userID)

		return err
	})
	if errors.Is(err, repository.ErrUserRoleNotFound) {
		return false, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to verify admin role", slog.Any("userID", userID), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to verify admin role")
	}

	return role.Role == entity.RoleAdmin, nil
}

func (srv *userRoleService) requireAdmin(ctx context.Context, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	isAdmin, err := srv.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !isAdmin {
		srv.log(ctx).Warn("Non-admin attempted an admin operation", slog.Any("actorID", actorID))

		return domainerrors.ErrForbidden
	}

	return nil
}

// ListRoles returns every role row to an admin.
func (srv *userRoleService) ListRoles(ctx context.Context, actorID uuid.UUID) ([]*entity.UserRole, error) {
	if err := srv.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list roles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// UpdateRole assigns a role on behalf of an admin and notifies the target's watchers.
func (srv *userRoleService) UpdateRole(ctx context.Context, actorID uuid.UUID, input *usecase.UpdateRoleInput) (*entity.UserRole, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if input.UserID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}
	if err := srv.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	// Only existing identities get a role row
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to look up role target", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user")
	}

	role, err := srv.roleRepo.Upsert(ctx, input.UserID, input.Role, input.ExpectedUpdatedAt)
	if err != nil {
		if errors.Is(err, repository.ErrUserRoleStale) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "role was modified by someone else")
		}
		srv.log(ctx).Error("Failed to update role", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("Role updated", slog.Any("actorID", actorID), slog.Any("userID", input.UserID), slog.String("role", role.Role.String()))
	srv.publish(ctx, role, actorID)

	return role, nil
}

// publish notifies watchers. A failed publish is logged; the stored row stays authoritative.
func (srv *userRoleService) publish(ctx context.Context, role *entity.UserRole, changedBy uuid.UUID) {
	change := entity.RoleChange{
		UserID:    role.UserID,
		Role:      role.Role,
		ChangedBy: changedBy,
		ChangedAt: srv.now(),
	}
	if err := srv.notifier.PublishRoleChange(ctx, change); err != nil {
		srv.log(ctx).Warn("Failed to publish role change", slog.Any("userID", role.UserID), slog.Any("error", err))
	}
}

// WatchRole subscribes to role changes of userID.
func (srv *userRoleService) WatchRole(ctx context.Context, userID uuid.UUID, name string) (service.RoleWatch, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	watch, err := srv.notifier.Watch(ctx, userID, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch role")
	}

	return watch, nil
}
