// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"swapmarket/config"
	"swapmarket/internal/domain/entity"
	"swapmarket/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// payloadValidator checks signature, audience and expiry of an ID token.
type payloadValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type authService struct {
	clientID string
	validate payloadValidator
	logger   *slog.Logger
}

// NewAuthService verifies tokens against Google's published keys.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &authService{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

func (s *authService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}
	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("token verification failed: invalid issuer %q", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Provider:      entity.ProviderGoogle,
	}
	if user.Email == "" || !user.EmailVerified {
		return nil, errors.New("token verification failed: email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

func (s *authService) GetProvider() string {
	return entity.ProviderGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true" string some tokens carry.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
