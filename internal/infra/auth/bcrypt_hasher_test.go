package auth

import (
	"testing"

	"pluma/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, hasher.Check("segredo123", hash))
	assert.False(t, hasher.Check("segredo124", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_NilConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("segredo123", "not-a-bcrypt-hash"))
}
