package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null;check:chk_products_price,price >= 0"`
	Category    string          `gorm:"type:varchar(30);not null;index"`
	Location    *string         `gorm:"type:varchar(255)"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	ImageURL    *string         `gorm:"type:text"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CartItemModel mirrors the 'cart_items' table. (user_id, product_id) is unique.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1"`
	CreatedAt time.Time
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity      int             `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	Product       *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// SwapRequestModel mirrors the 'swap_requests' table.
type SwapRequestModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Message     string        `gorm:"type:text;not null"`
	Status      string        `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time     `gorm:"index"`
	Product     *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (SwapRequestModel) TableName() string {
	return "swap_requests"
}

// All lists every model for auto-migration and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ProfileModel{},
		&UserRoleModel{},
		&UserDeviceModel{},
		&ProductModel{},
		&CartItemModel{},
		&OrderModel{},
		&SwapRequestModel{},
	}
}
