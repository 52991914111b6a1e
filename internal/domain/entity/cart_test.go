package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newLine(price int64, qty int) *CartItem {
	return &CartItem{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Quantity:  qty,
		Product:   &Product{Price: decimal.NewFromInt(price), OwnerID: uuid.New()},
	}
}

func TestCart_TotalPrice(t *testing.T) {
	cart := Cart{newLine(850000, 1), newLine(1200000, 2)}

	assert.True(t, decimal.NewFromInt(3250000).Equal(cart.TotalPrice()))
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_MissingProductContributesZero(t *testing.T) {
	missing := &CartItem{ID: uuid.New(), ProductID: uuid.New(), Quantity: 4}
	cart := Cart{newLine(100, 2), missing}

	assert.True(t, decimal.NewFromInt(200).Equal(cart.TotalPrice()))
	assert.Equal(t, 6, cart.TotalItems())
	assert.Equal(t, []*CartItem{missing}, cart.UnavailableItems())
}

func TestCart_EmptyTotals(t *testing.T) {
	var cart Cart

	assert.True(t, cart.TotalPrice().IsZero())
	assert.Zero(t, cart.TotalItems())
}

func TestNewCartView_FlagsUnavailableLines(t *testing.T) {
	missing := &CartItem{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	view := NewCartView(Cart{newLine(10, 1), missing})

	assert.Equal(t, []uuid.UUID{missing.ID}, view.Unavailable)
	assert.Equal(t, 2, view.TotalItems)
	assert.True(t, decimal.NewFromInt(10).Equal(view.TotalPrice))
}

func TestCartItem_MarksSold(t *testing.T) {
	assert.True(t, newLine(1, 1).MarksSold())
	assert.False(t, newLine(1, 2).MarksSold())
}

func TestNewOrderFromLine(t *testing.T) {
	buyer := uuid.New()
	line := newLine(1200000, 2)

	order := NewOrderFromLine(buyer, line)

	assert.Equal(t, buyer, order.BuyerID)
	assert.Equal(t, line.Product.OwnerID, order.SellerID)
	assert.Equal(t, line.ProductID, order.ProductID)
	assert.True(t, decimal.NewFromInt(2400000).Equal(order.TotalAmount))
	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
}
