package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "swapmarket/internal/delivery/context"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's identity and gates the admin area.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	roles  usecase.UserRoleUsecase
	logger *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx
type AuthMiddlewareParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Roles  usecase.UserRoleUsecase
	Logger *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   params.Auth,
		roles:  params.Roles,
		logger: params.Logger,
	}
}

// AccessToken extracts the bearer token. Browsers cannot set headers on a
// WebSocket handshake, so upgrades may pass it as ?access_token= instead.
func AccessToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if c.IsWebSocket() {
		return c.QueryParam("access_token")
	}

	return ""
}

// Authenticate requires a valid access token and stores its identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := AccessToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		user, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		// Carry the identity into service logs
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireAdmin re-reads the caller's role from the database on every request.
// Token claims are not trusted for admin access.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetUser(c)
		if user == nil {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		isAdmin, err := m.roles.IsAdmin(c.Request().Context(), user.ID)
		if err != nil {
			return errors.WithStack(err)
		}
		if !isAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}
