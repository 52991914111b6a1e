package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/market"
	"swapmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// DeviceHandler registers push targets for swap and order notifications
type DeviceHandler struct {
	facade *market.Facade
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{facade: params.Facade}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice registers a device or refreshes its token
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := scope(c, h.facade).RegisterDevice(c.Request().Context(), &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, device)
}

func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	devices, err := scope(c, h.facade).Devices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, devices)
}

// DeactivateDevice stops pushes to the device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := scope(c, h.facade).DeactivateDevice(c.Request().Context(), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}
