package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/market"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// CartHandler manages the caller's cart.
type CartHandler struct {
	facade *market.Facade
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{facade: params.Facade}
}

// AddCartItemRequest is the body of POST /cart/items. Quantity defaults to one.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// SetQuantityRequest is the body of PATCH /cart/items/:id
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=99"`
}

// ViewCart returns lines, totals and unavailable line IDs.
func (h *CartHandler) ViewCart(c echo.Context) error {
	view, err := scope(c, h.facade).Cart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := scope(c, h.facade).AddToCart(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := scope(c, h.facade).SetCartQuantity(c.Request().Context(), itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := scope(c, h.facade).RemoveFromCart(c.Request().Context(), itemID); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := scope(c, h.facade).ClearCart(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}
