// Package service declares the ports the use cases need from infrastructure.
package service

// PasswordHasher hashes account passwords on sign-up, reset and update, and checks them on sign-in.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash; malformed hashes never match.
	Check(password, hash string) bool
}
