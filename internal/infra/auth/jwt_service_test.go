package auth

import (
	"testing"
	"time"

	"pluma/config"
	"pluma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
			Reset:   "test_reset_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
			ResetTokenTTL:   10 * time.Minute,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)

	userID := uuid.New()
	roles := []string{"reader", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "ana@example.com", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "ana@example.com", accessClaims.Email)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't carry roles
	assert.NotEmpty(t, refreshClaims.ID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	_, first, err := jwtService.GenerateTokens(userID, "", nil)
	require.NoError(t, err)
	_, second, err := jwtService.GenerateTokens(userID, "", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "", nil)
	require.NoError(t, err)

	// Different secrets make a cross-type token fail signature verification.
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTypeMismatchWithSharedSecret(t *testing.T) {
	jwtService := newTestJWTService(t)
	jwtService.refreshSecret = jwtService.accessSecret

	_, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "", nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_ResetToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	token, err := jwtService.GenerateResetToken(userID)
	require.NoError(t, err)

	claims, err := jwtService.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeReset, claims.Type)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	issued := time.Now().Add(-2 * time.Hour)
	jwtService.now = func() time.Time { return issued }

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), "", nil)
	require.NoError(t, err)

	jwtService.now = time.Now
	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ResetSecretFallback(t *testing.T) {
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "a", Refresh: "r"},
	})
	require.NoError(t, err)

	token, err := svc.GenerateResetToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(token)
	assert.NoError(t, err)
}
