package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line in a user's cart. A user holds at most one line per product.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Product is the resolved listing, nil when it has been deleted.
	Product *Product `json:"product"`
}

// Unavailable reports whether the line's product could not be resolved.
func (c *CartItem) Unavailable() bool {
	return c.Product == nil
}

// LineTotal is price times quantity, zero for an unresolved product.
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}

	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// MarksSold reports whether checking out this line flips the product to sold.
// Only single-unit lines do; larger quantities leave the listing available.
// This mirrors the existing marketplace policy and is pending product-owner confirmation.
func (c *CartItem) MarksSold() bool {
	return c.Quantity == 1
}

// Cart is a user's cart lines.
type Cart []*CartItem

// TotalItems sums quantities across lines.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}

	return total
}

// TotalPrice sums line totals. Lines with a missing product contribute zero.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.LineTotal())
	}

	return total
}

// UnavailableItems returns the lines whose product no longer resolves.
func (c Cart) UnavailableItems() []*CartItem {
	var missing []*CartItem
	for _, item := range c {
		if item.Unavailable() {
			missing = append(missing, item)
		}
	}

	return missing
}

// CartView is the cart with its derived totals.
type CartView struct {
	Items       Cart            `json:"items"`
	TotalItems  int             `json:"total_items"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Unavailable []uuid.UUID     `json:"unavailable_item_ids"`
}

// NewCartView derives totals and the unavailable line IDs.
func NewCartView(items Cart) *CartView {
	view := &CartView{
		Items:       items,
		TotalItems:  items.TotalItems(),
		TotalPrice:  items.TotalPrice(),
		Unavailable: []uuid.UUID{},
	}
	for _, item := range items.UnavailableItems() {
		view.Unavailable = append(view.Unavailable, item.ID)
	}

	return view
}
