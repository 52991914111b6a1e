package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the availability of a listing.
type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSold      ProductStatus = "sold"
	ProductSwapped   ProductStatus = "swapped"
)

// IsValid checks the status against the closed set.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductAvailable, ProductSold, ProductSwapped:
		return true
	default:
		return false
	}
}

// Category is the fixed listing category set.
type Category string

const (
	CategorySmartphones Category = "smartphones"
	CategoryLaptops     Category = "laptops"
	CategoryTablets     Category = "tablets"
	CategoryTVs         Category = "tvs"
	CategoryAccessories Category = "accessories"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategorySmartphones, CategoryLaptops, CategoryTablets, CategoryTVs, CategoryAccessories}
}

// IsValid checks the category against the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategorySmartphones, CategoryLaptops, CategoryTablets, CategoryTVs, CategoryAccessories:
		return true
	default:
		return false
	}
}

// Product is a listing. It is readable by anyone and mutable only by its owner.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Location    *string         `json:"location"`
	Status      ProductStatus   `json:"status"`
	ImageURL    *string         `json:"image_url"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks the fields required to list a product.
func (p *Product) Validate() bool {
	if p.Name == "" || !p.Category.IsValid() {
		return false
	}
	if p.Price.IsNegative() {
		return false
	}

	return p.Status.IsValid()
}

// ProductUpdate carries an owner's partial edit. Nil fields are left untouched.
// Status is not checked against the previous value: any status may follow any other.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *Category
	Location    *string
	Status      *ProductStatus
	ImageURL    *string

	// ExpectedUpdatedAt, when set, makes the update apply only if the row was not modified since.
	ExpectedUpdatedAt *time.Time
}

// Validate checks the supplied fields against the closed sets.
func (u ProductUpdate) Validate() bool {
	if u.Name != nil && *u.Name == "" {
		return false
	}
	if u.Price != nil && u.Price.IsNegative() {
		return false
	}
	if u.Category != nil && !u.Category.IsValid() {
		return false
	}
	if u.Status != nil && !u.Status.IsValid() {
		return false
	}

	return true
}

// ProductFilter narrows a product listing. Zero values mean no filter.
type ProductFilter struct {
	Category Category
	OwnerID  uuid.UUID
	Status   ProductStatus
	Limit    int
}
