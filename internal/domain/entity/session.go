package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the identity attached to a request. The zero value is anonymous.
type Session struct {
	UserID uuid.UUID
	Email  string
	Roles  Roles
}

// IsAnonymous reports whether no reader is signed in.
func (s Session) IsAnonymous() bool {
	return s.UserID == uuid.Nil
}

// SessionEventType describes a change of a reader's session.
type SessionEventType string

const (
	SessionSignedIn        SessionEventType = "signed_in"
	SessionSignedOut       SessionEventType = "signed_out"
	SessionTokenRefreshed  SessionEventType = "token_refreshed"
	SessionPasswordUpdated SessionEventType = "password_updated"
)

// SessionEvent is pushed to every live subscription of the reader.
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	UserID     uuid.UUID        `json:"user_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}
