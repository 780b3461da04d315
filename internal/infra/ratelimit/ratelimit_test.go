package ratelimit

import (
	"testing"
	"time"

	"pluma/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedLimiter_BurstThenReject(t *testing.T) {
	limiter := New(rate.Every(time.Minute), 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Keys are independent.
	assert.True(t, limiter.Allow("5.6.7.8"))

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestKeyedLimiter_Sweep(t *testing.T) {
	limiter := New(rate.Every(time.Second), 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("old")
	now = now.Add(idleTTL + time.Second)
	limiter.Allow("fresh")

	assert.Equal(t, 1, limiter.Sweep())
	assert.Equal(t, 1, limiter.Len())
}

func TestNewKeyedLimiter_UsesConfig(t *testing.T) {
	limiter := NewKeyedLimiter(&config.Config{RateLimit: &config.RateLimitConfig{RequestsPerMinute: 60, Burst: 3}})

	assert.Equal(t, rate.Limit(1), limiter.limit)
	assert.Equal(t, 3, limiter.burst)
}
