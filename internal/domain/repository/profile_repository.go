package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

// ProfileRepository persists the profiles table.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpdateUsername stores an already normalised username or returns ErrUsernameTaken.
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error

	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
}
