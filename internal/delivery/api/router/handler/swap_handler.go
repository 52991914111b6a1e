package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/market"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SwapHandlerParams holds dependencies for SwapHandler, injected by Fx.
type SwapHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// SwapHandler serves barter proposals.
type SwapHandler struct {
	facade *market.Facade
}

// NewSwapHandler is the constructor for SwapHandler
func NewSwapHandler(params SwapHandlerParams) *SwapHandler {
	return &SwapHandler{facade: params.Facade}
}

// CreateSwapRequest is the body of POST /swap-requests
type CreateSwapRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Message   string    `json:"message" validate:"required,max=1000"`
}

// UpdateSwapStatusRequest is the body of PATCH /swap-requests/:id
type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,swap_resolution"`
}

func (h *SwapHandler) CreateSwapRequest(c echo.Context) error {
	var req CreateSwapRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	swap, err := scope(c, h.facade).RequestSwap(c.Request().Context(), req.ProductID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, swap)
}

// ListSwapRequests returns received and sent requests.
func (h *SwapHandler) ListSwapRequests(c echo.Context) error {
	bundle, err := scope(c, h.facade).SwapRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, bundle)
}

// UpdateSwapStatus accepts or rejects a request on one of the caller's products.
func (h *SwapHandler) UpdateSwapStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateSwapStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	swap, err := scope(c, h.facade).ResolveSwap(c.Request().Context(), id, entity.SwapStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, swap)
}
