package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned by non-blocking paths when no tokens remain.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiterConfig configures a client-side rate limiter.
type RateLimiterConfig struct {
	// Rate is the number of requests allowed per second.
	Rate float64
	// Burst is the maximum burst size.
	Burst int
	// OnLimit is called when a request is rate limited.
	OnLimit func()
}

// DefaultRateLimiterConfig returns sensible defaults.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{Rate: 10.0, Burst: 20}
}

// RateLimiter is a token bucket limiter controlling outbound request rate.
type RateLimiter struct {
	config RateLimiterConfig

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.Rate <= 0 {
		config.Rate = 10.0
	}
	if config.Burst <= 0 {
		config.Burst = int(config.Rate)
	}
	return &RateLimiter{
		config:     config,
		tokens:     float64(config.Burst),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a single request may proceed without blocking.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	if rl.config.OnLimit != nil {
		rl.config.OnLimit()
	}
	return false
}

// Wait blocks until a request is allowed or the context is cancelled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	wait := rl.reserve()
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the current number of available tokens.
func (rl *RateLimiter) Tokens() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	return rl.tokens
}

// refill adds tokens for the elapsed time, capped at the burst size.
func (rl *RateLimiter) refill() {
	now := time.Now()
	rl.tokens += now.Sub(rl.lastRefill).Seconds() * rl.config.Rate
	rl.lastRefill = now

	if rl.tokens > float64(rl.config.Burst) {
		rl.tokens = float64(rl.config.Burst)
	}
}

// reserve consumes one token and returns how long the caller must wait
// before acting on it.
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	rl.tokens--
	if rl.tokens >= 0 {
		return 0
	}
	return time.Duration(-rl.tokens / rl.config.Rate * float64(time.Second))
}
