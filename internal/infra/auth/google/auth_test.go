package google

import (
	"context"
	"log/slog"
	"testing"

	"swapmarket/config"
	"swapmarket/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate payloadValidator) *authService {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-123"}}
	svc := NewAuthService(cfg, slog.Default()).(*authService)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "buyer@example.com",
				"email_verified": true,
				"name":           "Buyer",
				"picture":        "https://example.com/a.png",
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "client-123", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, entity.ProviderGoogle, user.Provider)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{
			name: "signature invalid",
			err:  errors.New("idtoken: invalid token signature"),
		},
		{
			name: "foreign issuer",
			payload: &idtoken.Payload{
				Issuer: "https://evil.example.com",
				Claims: map[string]any{"email": "a@example.com", "email_verified": true},
			},
		},
		{
			name: "unverified email",
			payload: &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email": "a@example.com", "email_verified": "false"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tc.payload, tc.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "token")

			assert.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), "token verification failed")
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")

	assert.Error(t, err)
	assert.Equal(t, entity.ProviderGoogle, svc.GetProvider())
}
