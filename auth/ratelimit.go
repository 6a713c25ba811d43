package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

// idleLimiterTTL is how long an unused key keeps its bucket
const idleLimiterTTL = 30 * time.Minute

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per user or client IP
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters map[string]*keyLimiter
	mu       sync.Mutex
	now      func() time.Time
}

// NewRateLimiter creates a limiter from the analysis rate settings.
// A non-positive rate disables limiting and returns nil.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	if cfg.AnalysisRatePerMinute <= 0 {
		return nil
	}

	burst := cfg.AnalysisRateBurst
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		// requests per minute converted to requests per second
		limit:    rate.Limit(float64(cfg.AnalysisRatePerMinute) / 60.0),
		burst:    burst,
		limiters: make(map[string]*keyLimiter),
		now:      time.Now,
	}
}

// Allow reports whether a request for key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evictIdle(now)

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &keyLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > idleLimiterTTL {
			delete(rl.limiters, key)
		}
	}
}

// RateLimitMiddleware rejects requests over the per-user rate with 429.
// Authenticated requests are keyed by user, others by client IP.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if claims := GetAuthClaims(c); claims != nil {
			key = "user:" + claims.OwnerID()
		}

		if !rl.Allow(key) {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many analysis requests, please try again later",
				Code:  http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
