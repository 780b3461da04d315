// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pluma/internal/domain/entity"
	"pluma/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput is the sign-up form.
type SignUpInput struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignInInput defines the data required for a reader to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the token from the reset link and the new password.
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// UpdatePasswordInput changes the password of a signed-in reader.
type UpdatePasswordInput struct {
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// SignInOutput returns the generated tokens after a successful sign-in or refresh.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	Session      entity.Session
	Profile      *entity.Profile
}

// AuthUsecase covers sign-up, sign-in and everything that changes a session.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.Profile, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	// RefreshSession rotates the refresh token.
	RefreshSession(ctx context.Context, refreshToken string) (*SignInOutput, error)
	SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) error
	// CurrentSession never fails: any token problem yields the anonymous session.
	CurrentSession(ctx context.Context, accessToken string) entity.Session
	// RequestPasswordReset always succeeds so callers cannot probe for accounts.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, input UpdatePasswordInput) error
	// SubscribeSessionEvents opens a live feed; the caller must Close it.
	SubscribeSessionEvents(userID uuid.UUID) service.Subscription
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
