package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{
			name:    "valid",
			product: Product{Name: "Pixel 8", Price: decimal.NewFromInt(15000), Category: CategorySmartphones, Status: ProductAvailable},
			want:    true,
		},
		{
			name:    "free item",
			product: Product{Name: "Cable", Price: decimal.Zero, Category: CategoryAccessories, Status: ProductAvailable},
			want:    true,
		},
		{
			name:    "missing name",
			product: Product{Price: decimal.NewFromInt(1), Category: CategoryTVs, Status: ProductAvailable},
		},
		{
			name:    "negative price",
			product: Product{Name: "TV", Price: decimal.NewFromInt(-1), Category: CategoryTVs, Status: ProductAvailable},
		},
		{
			name:    "unknown category",
			product: Product{Name: "Drone", Price: decimal.NewFromInt(1), Category: "drones", Status: ProductAvailable},
		},
		{
			name:    "unknown status",
			product: Product{Name: "iPad", Price: decimal.NewFromInt(1), Category: CategoryTablets, Status: "reserved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.Validate())
		})
	}
}

func TestProductUpdate_Validate(t *testing.T) {
	empty := ""
	negative := decimal.NewFromInt(-5)
	sold := ProductSold
	bogus := ProductStatus("gone")

	assert.True(t, ProductUpdate{Status: &sold}.Validate())
	assert.False(t, ProductUpdate{Name: &empty}.Validate())
	assert.False(t, ProductUpdate{Price: &negative}.Validate())
	assert.False(t, ProductUpdate{Status: &bogus}.Validate())
}

func TestParseRole_FallsBackToUser(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
}
