package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,30}$`)

// NormalizeUsername trims and lower-cases raw and reports whether the result is a valid username.
func NormalizeUsername(raw string) (string, bool) {
	username := strings.ToLower(strings.TrimSpace(raw))

	return username, usernamePattern.MatchString(username)
}

// Profile is the public face of a reader account.
type Profile struct {
	ID        uuid.UUID
	Username  *string // Lower-cased and unique when set.
	Email     string
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UsernameOrEmpty returns the username or "" when it was never chosen.
func (p *Profile) UsernameOrEmpty() string {
	if p.Username == nil {
		return ""
	}

	return *p.Username
}
