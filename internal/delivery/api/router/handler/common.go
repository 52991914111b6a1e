// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	"swapmarket/internal/delivery/api/response"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/market"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return id, nil
}

// scope binds the facade to the authenticated caller.
func scope(c echo.Context, facade *market.Facade) *market.Scope {
	return facade.For(deliverycontext.GetUser(c))
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// UserResponse is the public view of an identity.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}
