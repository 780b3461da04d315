// Package ratelimit provides a keyed token bucket limiter for inbound requests.
package ratelimit

import (
	"sync"
	"time"

	"pluma/config"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused key keeps its bucket before Sweep drops it.
const idleTTL = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one independent bucket per key (client IP).
type KeyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewKeyedLimiter builds a limiter from the rate limit config.
func NewKeyedLimiter(cfg *config.Config) *KeyedLimiter {
	perMinute, burst := 10, 5
	if cfg.RateLimit != nil {
		perMinute, burst = cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst
	}

	return New(rate.Limit(float64(perMinute)/60), burst)
}

// New creates a limiter allowing limit events per second with the given burst.
func New(limit rate.Limit, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		entries: make(map[string]*entry),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle for longer than idleTTL and returns how many were removed.
func (l *KeyedLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idleTTL)
	removed := 0
	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
