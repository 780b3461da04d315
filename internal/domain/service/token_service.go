package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, email string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks signature, expiry and that the token is an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature, expiry and that the token is a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GenerateResetToken creates a short-lived password reset token.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// ValidateResetToken checks a password reset token.
	ValidateResetToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
