package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/bizos/backend/internal/interfaces/http/dto"
)

// RateLimiter throttles requests per caller using token buckets. Used on the
// generation routes to keep one tenant from exhausting the provider quota.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute sustained
// requests with a burst of burst
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, e := range rl.limiters {
			if e.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether a request from key may proceed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = time.Now()
	rl.mu.Unlock()

	return e.limiter.Allow()
}

// Middleware returns a gin handler enforcing the limit per authenticated
// owner, falling back to client IP before authentication
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if ownerID, ok := GetOwnerID(c); ok {
			key = ownerID.String()
		}

		if !rl.Allow(key) {
			requestID := c.GetString(RequestIDKey)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeRateLimited, "Too many generation requests; slow down", requestID))
			return
		}
		c.Next()
	}
}

// MiddlewareForPaths limits only requests whose matched route is in paths.
// Everything else passes through untouched, so CRUD routes in the same
// group stay unthrottled.
func (rl *RateLimiter) MiddlewareForPaths(paths ...string) gin.HandlerFunc {
	limited := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		limited[p] = struct{}{}
	}
	inner := rl.Middleware()
	return func(c *gin.Context) {
		if _, ok := limited[c.FullPath()]; !ok {
			c.Next()
			return
		}
		inner(c)
	}
}
