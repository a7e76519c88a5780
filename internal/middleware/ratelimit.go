// ratelimit.go implements upload rate limiting using a token bucket algorithm.
//
// How token bucket works:
// - Each caller (user ID, or client IP for anonymous requests) gets a
//   "bucket" with N tokens
// - Each request consumes 1 token
// - Tokens refill at a steady rate (N tokens per hour)
// - If the bucket is empty, the request is rejected with 429 Too Many Requests
//
// This is more sophisticated than a simple counter because it smooths out
// burst traffic naturally.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/models"
)

// RateLimiter tracks request rates per caller.
type RateLimiter struct {
	// Go Pattern: sync.Mutex guards the bucket map. Buckets mutate on every
	// request, so a plain Mutex is the right tool here.
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int // requests per hour
}

// bucket tracks the token state for a single caller.
type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter allowing `perHour` requests per
// caller per hour.
func NewRateLimiter(perHour int) *RateLimiter {
	if perHour <= 0 {
		perHour = 60
	}
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   perHour,
	}

	// Background cleanup keeps the map from growing unboundedly with
	// one-off anonymous IPs.
	go rl.cleanup()

	return rl
}

// RateLimit returns Gin middleware that enforces the per-caller limit.
// Authenticated callers are keyed by user ID, anonymous ones by client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if user := GetUser(c); user != nil {
			key = user.ID
		}

		allowed, remaining := rl.allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Rate limit exceeded. Try again later.",
				Code:    http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks whether a request should go through, consuming a token if so.
// Returns the remaining token count for response headers.
func (rl *RateLimiter) allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{
			tokens:     float64(rl.limit),
			maxTokens:  float64(rl.limit),
			refillRate: float64(rl.limit) / 3600.0,
			lastRefill: now,
		}
		rl.buckets[key] = b
	}

	// Refill based on elapsed time
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false, 0
	}

	b.tokens--
	return true, int(b.tokens)
}

// cleanup periodically removes buckets that have fully refilled — they
// carry no state a fresh bucket wouldn't have.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.buckets {
			elapsed := now.Sub(b.lastRefill).Seconds()
			if b.tokens+elapsed*b.refillRate >= b.maxTokens {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}
