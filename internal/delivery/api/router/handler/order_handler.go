package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/market"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// OrderHandler turns carts into orders.
type OrderHandler struct {
	facade *market.Facade
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{facade: params.Facade}
}

// OrderLineRequest is one line of POST /orders
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=99"`
}

// CreateOrdersRequest is the body of POST /orders
type CreateOrdersRequest struct {
	Lines []OrderLineRequest `json:"lines" validate:"required,min=1,max=50,dive"`
}

// Checkout places one order per cart line and clears the cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	result, err := scope(c, h.facade).Checkout(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, result)
}

// CreateOrders places orders for explicit lines instead of the stored cart.
func (h *OrderHandler) CreateOrders(c echo.Context) error {
	var req CreateOrdersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lines := make([]usecase.OrderLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = usecase.OrderLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	result, err := scope(c, h.facade).PlaceOrders(c.Request().Context(), lines)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, result)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := scope(c, h.facade).Orders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}
