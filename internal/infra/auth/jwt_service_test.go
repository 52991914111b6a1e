package auth

import (
	"testing"
	"time"

	"swapmarket/config"
	"swapmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, "seller@example.com", []string{"user", "admin"})
	require.NoError(t, err)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "seller@example.com", accessClaims.Email)
	assert.Equal(t, []string{"user", "admin"}, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), "a@example.com", nil)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredAndTamperedTokens(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "a@example.com", nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "x")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)

	svc.now = func() time.Time { return time.Now().Add(defaultAccessTTL + time.Minute) }
	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	_, first, err := svc.GenerateTokens(userID, "a@example.com", nil)
	require.NoError(t, err)
	_, second, err := svc.GenerateTokens(userID, "a@example.com", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
