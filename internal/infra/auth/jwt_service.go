// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"pluma/config"
	"pluma/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWrongTokenType is returned when a valid token is presented where another type is expected.
var ErrWrongTokenType = errors.New("unexpected token type")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	resetSecret   []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	// Reset tokens fall back to a secret derived from the refresh secret so older configs keep working.
	resetSecret := cfg.SecretKey.Reset
	if resetSecret == "" {
		resetSecret = cfg.SecretKey.Refresh + ":reset"
	}

	srv := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		resetSecret:   []byte(resetSecret),
		accessTTL:     15 * time.Minute,
		refreshTTL:    7 * 24 * time.Hour,
		resetTTL:      30 * time.Minute,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			srv.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			srv.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			srv.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return srv, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, email string, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.sign(&service.Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
		Type:   service.TokenTypeAccess,
	}, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	// The jti makes two refresh tokens issued within the same second distinct.
	refreshToken, err = s.sign(&service.Claims{
		UserID: userID,
		Type:   service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: uuid.NewString(),
		},
	}, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateResetToken creates a password reset token.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.sign(&service.Claims{
		UserID: userID,
		Type:   service.TokenTypeReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: uuid.NewString(),
		},
	}, s.resetTTL, s.resetSecret)
}

// ValidateAccessToken parses an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken parses a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// ValidateResetToken parses a password reset token.
func (s *jwtService) ValidateResetToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.resetSecret, service.TokenTypeReset)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// tokenClaims is the wire form of service.Claims.
type tokenClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

func (s *jwtService) sign(claims *service.Claims, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	wire := tokenClaims{
		Email: claims.Email,
		Roles: claims.Roles,
		Type:  claims.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.ID,
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wire).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte, wantType string) (*service.Claims, error) {
	var wire tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &wire, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if wire.Type != wantType {
		return nil, errors.Wrapf(ErrWrongTokenType, "got %q, want %q", wire.Type, wantType)
	}

	userID, err := uuid.Parse(wire.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            wire.Email,
		Roles:            wire.Roles,
		Type:             wire.Type,
		RegisteredClaims: wire.RegisteredClaims,
	}, nil
}
