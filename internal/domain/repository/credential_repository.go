package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// CredentialRepository persists email/password credentials.
type CredentialRepository interface {
	// Create stores a new credential or returns ErrEmailAlreadyExists.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail looks up a credential by lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
