package handler

import (
	"net/http"
	"strconv"

	"swapmarket/internal/delivery/api/response"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/market"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	Facade *market.Facade
}

// DashboardHandler serves the admin console. Routes sit behind RequireAdmin.
type DashboardHandler struct {
	facade *market.Facade
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{facade: params.Facade}
}

// Dashboard returns the cached bundle. ?force=true bypasses the cache.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	force := false
	if raw := c.QueryParam("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid force"))
		}
		force = parsed
	}

	bundle, err := scope(c, h.facade).Dashboard(c.Request().Context(), force)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, bundle)
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := scope(c, h.facade).Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}

func (h *DashboardHandler) Analytics(c echo.Context) error {
	analytics, err := scope(c, h.facade).Analytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, analytics)
}

func (h *DashboardHandler) RecentActivity(c echo.Context) error {
	entries, err := scope(c, h.facade).RecentActivity(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entries)
}

// Health reports 503 when any dependency is down.
func (h *DashboardHandler) Health(c echo.Context) error {
	checks := scope(c, h.facade).Health(c.Request().Context())

	status := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = http.StatusServiceUnavailable

			break
		}
	}

	return response.Success(c, status, checks)
}
