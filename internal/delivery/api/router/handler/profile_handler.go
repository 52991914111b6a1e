package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/market"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	Facade *market.Facade
}

type ProfileHandler struct {
	facade *market.Facade
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{facade: params.Facade}
}

// UpdateProfileRequest is the body of PATCH /profile
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Location  *string `json:"location" validate:"omitempty,max=200"`
}

// GetProfile creates the default profile on first access.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := scope(c, h.facade).Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := scope(c, h.facade).UpdateProfile(c.Request().Context(), entity.ProfileUpdate{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Phone:     req.Phone,
		Location:  req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}
