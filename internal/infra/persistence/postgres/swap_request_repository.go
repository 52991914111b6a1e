package postgres

import (
	"context"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"
	"swapmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type swapRequestRepository struct {
	db *gorm.DB
}

// NewSwapRequestRepository is the constructor for swapRequestRepository.
func NewSwapRequestRepository(db *gorm.DB) repository.SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

// Create persists a new swap request.
func (repo *swapRequestRepository) Create(ctx context.Context, request *entity.SwapRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	requestM := fromSwapRequestDomain(request)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create swap request")
	}

	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByID retrieves a swap request with its product.
func (repo *swapRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	var requestM model.SwapRequestModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSwapRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find swap request")
	}

	return toSwapRequestDomain(&requestM), nil
}

// ListByProductIDs returns requests targeting any of the given products, newest first.
func (repo *swapRequestRepository) ListByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.SwapRequest, error) {
	if len(productIDs) == 0 {
		return []*entity.SwapRequest{}, nil
	}

	return repo.list(ctx, repo.db.Where("product_id IN ?", productIDs), "failed to list received swap requests")
}

// ListByRequester returns requests the user sent, newest first.
func (repo *swapRequestRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.SwapRequest, error) {
	return repo.list(ctx, repo.db.Where("requester_id = ?", requesterID), "failed to list sent swap requests")
}

// ListRecent returns the newest requests across all users.
func (repo *swapRequestRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SwapRequest, error) {
	return repo.list(ctx, repo.db.Limit(limit), "failed to list recent swap requests")
}

// UpdateStatus sets the status and returns the stored row.
func (repo *swapRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SwapStatus) (*entity.SwapRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SwapRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update swap request")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSwapRequestNotFound
	}

	var requestM model.SwapRequestModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Product").
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload swap request")
	}

	return toSwapRequestDomain(&requestM), nil
}

// CountByStatus counts requests with status, or all requests when status is empty.
func (repo *swapRequestRepository) CountByStatus(ctx context.Context, status entity.SwapStatus) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SwapRequestModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count swap requests")
	}

	return count, nil
}

func (repo *swapRequestRepository) list(ctx context.Context, query *gorm.DB, msg string) ([]*entity.SwapRequest, error) {
	var requestModels []*model.SwapRequestModel
	if err := query.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	requests := make([]*entity.SwapRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toSwapRequestDomain(requestM))
	}

	return requests, nil
}

func toSwapRequestDomain(data *model.SwapRequestModel) *entity.SwapRequest {
	return &entity.SwapRequest{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		ProductID:   data.ProductID,
		Message:     data.Message,
		Status:      entity.SwapStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		Product:     toProductDomain(data.Product),
	}
}

func fromSwapRequestDomain(data *entity.SwapRequest) *model.SwapRequestModel {
	return &model.SwapRequestModel{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		ProductID:   data.ProductID,
		Message:     data.Message,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}
