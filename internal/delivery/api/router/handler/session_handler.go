package handler

import (
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/market"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// SessionHandler describes the caller's session.
type SessionHandler struct {
	facade *market.Facade
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{facade: params.Facade}
}

// SessionViewResponse is the body of GET /session
type SessionViewResponse struct {
	User    *UserResponse   `json:"user"`
	Role    entity.Role     `json:"role"`
	IsAdmin bool            `json:"is_admin"`
	Profile *entity.Profile `json:"profile"`
}

// GetSession returns identity, role and profile in one round trip.
func (h *SessionHandler) GetSession(c echo.Context) error {
	view, err := scope(c, h.facade).Session(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &SessionViewResponse{
		User:    toUserResponse(view.User),
		Role:    view.Role,
		IsAdmin: view.Role == entity.RoleAdmin,
		Profile: view.Profile,
	})
}
