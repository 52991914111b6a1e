package handler

import (
	"log/slog"

	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler opens and closes sessions.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/signup
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// SignInRequest is the body of POST /auth/signin
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInRequest is the body of POST /auth/google
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshRequest carries a refresh token for /auth/refresh and /auth/signout
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse is returned by every sign-in flavour
type SessionResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
	Role         entity.Role   `json:"role,omitempty"`
}

func toSessionResponse(out *usecase.SessionOutput) *SessionResponse {
	return &SessionResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         toUserResponse(out.User),
		Role:         out.Role,
	}
}

func deviceInfo(c echo.Context) entity.DeviceInfo {
	return entity.DeviceInfo{
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	}
}

// SignUp registers an identity. The caller signs in separately.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(out.User))
}

// SignIn opens a session with email and password.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		Device:   deviceInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toSessionResponse(out))
}

// GoogleSignIn opens a session with a Google ID token.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.GoogleSignIn(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken: req.IDToken,
		Device:  deviceInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toSessionResponse(out))
}

// Refresh rotates the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toSessionResponse(out))
}

// SignOut revokes the refresh token. Unknown tokens still succeed.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}
