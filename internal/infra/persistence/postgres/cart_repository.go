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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByUser returns the user's lines newest first. A line whose product is gone has a nil Product.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// AddOrIncrement inserts the line or adds its quantity to the existing (user, product) line in one statement.
func (repo *cartRepository) AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			}),
		}).
		Omit("Product").
		Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidQuantity
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	var stored model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Product").
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload cart item")
	}

	return toCartItemDomain(&stored), nil
}

// SetQuantity overwrites the quantity of a line owned by userID.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) (*entity.CartItem, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrInvalidQuantity
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartItemNotFound
	}

	var stored model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Product").
		Where("id = ?", id).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload cart item")
	}

	return toCartItemDomain(&stored), nil
}

// Delete removes a line owned by userID.
func (repo *cartRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteByUser empties the user's cart.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		Product:   toProductDomain(data.Product),
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}
