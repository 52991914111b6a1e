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

type userRoleRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRoleRepository is the constructor for userRoleRepository.
func NewUserRoleRepository(db *gorm.DB) repository.UserRoleRepository {
	return &userRoleRepository{db: db, now: time.Now}
}

// FindByUserID retrieves the single role row for a user.
func (repo *userRoleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserRole, error) {
	var roleM model.UserRoleModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find user role")
	}

	return toUserRoleDomain(&roleM), nil
}

// List returns every role row, most recently changed first.
func (repo *userRoleRepository) List(ctx context.Context) ([]*entity.UserRole, error) {
	var roleModels []*model.UserRoleModel
	if err := repo.db.WithContext(ctx).Order("updated_at DESC").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user roles")
	}

	roles := make([]*entity.UserRole, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toUserRoleDomain(roleM))
	}

	return roles, nil
}

// Upsert writes the user's role. When expectedUpdatedAt is set, an existing row is
// only overwritten if it has not changed since then; otherwise ErrUserRoleStale is returned.
func (repo *userRoleRepository) Upsert(ctx context.Context, userID uuid.UUID, role entity.Role, expectedUpdatedAt *time.Time) (*entity.UserRole, error) {
	now := repo.now()
	roleM := &model.UserRoleModel{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}
	if expectedUpdatedAt != nil {
		onConflict.Where = clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "user_roles.updated_at <= ?", Vars: []any{*expectedUpdatedAt}},
		}}
	}

	result := repo.db.WithContext(ctx).Clauses(onConflict).Create(roleM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert user role")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserRoleStale
	}

	var stored model.UserRoleModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload user role")
	}

	return toUserRoleDomain(&stored), nil
}

// CreateIfAbsent inserts a role row only when the user has none.
func (repo *userRoleRepository) CreateIfAbsent(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	now := repo.now()
	roleM := &model.UserRoleModel{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(roleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user role")
	}

	return nil
}

func toUserRoleDomain(data *model.UserRoleModel) *entity.UserRole {
	return &entity.UserRole{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      entity.ParseRole(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
