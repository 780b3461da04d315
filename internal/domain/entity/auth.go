// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the email and password pair a reader signs in with.
type Credential struct {
	UserID       uuid.UUID // Same id as the reader's Profile.
	Email        string    // Lower-cased, unique.
	PasswordHash string    // bcrypt hash, never the raw password.
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the reader it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}
