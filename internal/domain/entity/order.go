package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks the status against the closed set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus is the simulated payment state of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// IsValid checks the status against the closed set.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

// Order records one purchased cart line. SellerID is captured from the product owner
// at creation time and is not re-validated afterwards.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	SellerID      uuid.UUID       `json:"seller_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// NewOrderFromLine derives a pending order from a resolved cart line.
func NewOrderFromLine(buyerID uuid.UUID, line *CartItem) *Order {
	return &Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		SellerID:      line.Product.OwnerID,
		ProductID:     line.ProductID,
		Quantity:      line.Quantity,
		TotalAmount:   line.LineTotal(),
		Status:        OrderPending,
		PaymentStatus: PaymentPending,
		Product:       line.Product,
	}
}

// CheckoutResult is the outcome of converting a cart into orders.
type CheckoutResult struct {
	Orders         []*Order        `json:"orders"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SoldProductIDs []uuid.UUID     `json:"sold_product_ids"`
}
