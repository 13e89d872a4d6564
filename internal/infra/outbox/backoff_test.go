//go:build unit

package outbox

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRetryAt_WithinExponentialWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := BackoffConfig{BaseDelay: time.Minute, MaxDelay: time.Hour}
	rng := rand.New(rand.NewSource(42))

	for attempt := 1; attempt <= 10; attempt++ {
		maxDelay := cfg.BaseDelay << (attempt - 1)
		if maxDelay > cfg.MaxDelay || maxDelay <= 0 {
			maxDelay = cfg.MaxDelay
		}

		for i := 0; i < 100; i++ {
			next := NextRetryAt(now, attempt, cfg, rng)
			assert.False(t, next.Before(now), "attempt %d: retry scheduled in the past", attempt)
			assert.False(t, next.After(now.Add(maxDelay)), "attempt %d: retry beyond window", attempt)
		}
	}
}

func TestNextRetryAt_CapsAtMaxDelay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := BackoffConfig{BaseDelay: time.Minute, MaxDelay: time.Hour}
	rng := rand.New(rand.NewSource(1))

	// Large attempt counts would overflow the shift without the cap.
	next := NextRetryAt(now, 50, cfg, rng)
	assert.False(t, next.After(now.Add(cfg.MaxDelay)))
}

func TestNextRetryAt_DefaultsForZeroConfig(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(7))

	next := NextRetryAt(now, 1, BackoffConfig{}, rng)
	assert.False(t, next.Before(now))
	assert.False(t, next.After(now.Add(time.Minute)))
}

func TestNextRetryAt_ClampsAttemptToOne(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := BackoffConfig{BaseDelay: time.Minute, MaxDelay: time.Hour}
	rng := rand.New(rand.NewSource(3))

	next := NextRetryAt(now, 0, cfg, rng)
	assert.False(t, next.After(now.Add(cfg.BaseDelay)))
}
