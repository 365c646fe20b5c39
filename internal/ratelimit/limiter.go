package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client key (usually the remote
// IP), so a single aggressive client cannot hammer the search endpoint.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewClientLimiterWithDefaults() *ClientLimiter {
	return NewClientLimiter(DefaultConfig())
}

func (c *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[client]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists = c.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.defaults.RequestsPerSecond), c.defaults.BurstSize)
	c.limiters[client] = limiter
	return limiter
}

func (c *ClientLimiter) SetClientLimit(client string, rps float64, burst int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.limiters[client] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Allow reports whether the client may proceed right now, without waiting.
func (c *ClientLimiter) Allow(client string) bool {
	return c.GetLimiter(client).Allow()
}
