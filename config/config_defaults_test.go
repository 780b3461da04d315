package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMinPasswordLength, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultFeaturedLimit, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, int64(defaultMaxAvatarBytes), cfg.Storage.MaxAvatarBytes)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 8, cfg.Session.SubscriberBuffer)
	assert.Equal(t, time.Hour, cfg.Session.PurgeInterval)
	assert.NotNil(t, cfg.RateLimit)
	assert.NotNil(t, cfg.Checkout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{MinPasswordLength: 10, AccessTokenTTL: time.Minute},
		Catalog: &CatalogConfig{FeaturedLimit: 8},
		Storage: &StorageConfig{BucketURL: "file:///tmp/x", MaxAvatarBytes: 42},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 8, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, "file:///tmp/x", cfg.Storage.BucketURL)
	assert.Equal(t, int64(42), cfg.Storage.MaxAvatarBytes)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
}
