package handler

import (
	"time"

	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/market"
	"swapmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// RoleHandler exposes the role gate.
type RoleHandler struct {
	facade *market.Facade
}

// NewRoleHandler is the constructor for RoleHandler
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{facade: params.Facade}
}

// UpdateRoleRequest is the body of PUT /admin/roles/:user_id
type UpdateRoleRequest struct {
	Role              string     `json:"role" validate:"required,role"`
	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

// RoleResponse is the body of GET /roles/me
type RoleResponse struct {
	Role    entity.Role `json:"role"`
	IsAdmin bool        `json:"is_admin"`
}

// MyRole reads the caller's role from the primary.
func (h *RoleHandler) MyRole(c echo.Context) error {
	s := scope(c, h.facade)

	isAdmin, err := s.IsAdmin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	role := entity.RoleUser
	if isAdmin {
		role = entity.RoleAdmin
	}

	return response.OK(c, &RoleResponse{Role: role, IsAdmin: isAdmin})
}

func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := scope(c, h.facade).Roles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, roles)
}

// UpdateRole assigns a role. Watchers of the target identity are notified.
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := scope(c, h.facade).AssignRole(c.Request().Context(), &usecase.UpdateRoleInput{
		UserID:            userID,
		Role:              entity.Role(req.Role),
		ExpectedUpdatedAt: req.ExpectedUpdatedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, role)
}
