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
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateBatch inserts all orders in one statement.
func (repo *orderRepository) CreateBatch(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderModels := make([]*model.OrderModel, 0, len(orders))
	for _, order := range orders {
		if order.ID == uuid.Nil {
			order.ID = uuid.New()
		}
		orderModels = append(orderModels, fromOrderDomain(order))
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(&orderModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create orders")
	}

	for i, orderM := range orderModels {
		orders[i].CreatedAt = orderM.CreatedAt
	}

	return nil
}

// ListByBuyer returns the buyer's orders newest first.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		ProductID:     data.ProductID,
		Quantity:      data.Quantity,
		TotalAmount:   data.TotalAmount,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		Product:       toProductDomain(data.Product),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		ProductID:     data.ProductID,
		Quantity:      data.Quantity,
		TotalAmount:   data.TotalAmount,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
	}
}
