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
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns products newest first.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(productModels), nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves products by ID.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductsDomain(productModels), nil
}

// ListIDsByOwner returns the IDs of every product owned by ownerID.
func (repo *productRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owned product ids")
	}

	return ids, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update applies an edit scoped to id and ownerID.
func (repo *productRepository) Update(ctx context.Context, ownerID, id uuid.UUID, update entity.ProductUpdate) (*entity.Product, error) {
	changes := map[string]any{"updated_at": time.Now()}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Price != nil {
		changes["price"] = *update.Price
	}
	if update.Category != nil {
		changes["category"] = string(*update.Category)
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}
	if update.Status != nil {
		changes["status"] = string(*update.Status)
	}
	if update.ImageURL != nil {
		changes["image_url"] = *update.ImageURL
	}

	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID)
	if update.ExpectedUpdatedAt != nil {
		query = query.Where("updated_at <= ?", *update.ExpectedUpdatedAt)
	}

	result := query.Updates(changes)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrProductInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload product")
	}

	return toProductDomain(&productM), nil
}

// Delete removes a product scoped to id and ownerID.
func (repo *productRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// MarkSold sets status to sold for every given product.
func (repo *productRepository) MarkSold(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":     string(entity.ProductSold),
			"updated_at": time.Now(),
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark products sold")
	}

	return nil
}

// CountByStatus counts products with status, or all products when status is empty.
func (repo *productRepository) CountByStatus(ctx context.Context, status entity.ProductStatus) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Location:    data.Location,
		Status:      parseProductStatus(data.Status),
		ImageURL:    data.ImageURL,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductsDomain(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    string(data.Category),
		Location:    data.Location,
		Status:      string(data.Status),
		ImageURL:    data.ImageURL,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// parseProductStatus maps unknown stored values onto available.
func parseProductStatus(s string) entity.ProductStatus {
	status := entity.ProductStatus(s)
	if !status.IsValid() {
		return entity.ProductAvailable
	}

	return status
}
