package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"legal-workspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterCleanupInterval = 5 * time.Minute

// RateLimitConfig is the number of requests a client may make per window
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// PerMinute allows n requests per minute with all n available as a burst
func PerMinute(n int) RateLimitConfig {
	return RateLimitConfig{RequestsPerWindow: n, Window: time.Minute, Burst: n}
}

type ipLimiter struct {
	limiters    sync.Map // client ip -> *rate.Limiter
	rate        rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (l *ipLimiter) get(key string) *rate.Limiter {
	if limiter, ok := l.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	l.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose bucket has refilled, i.e. idle clients
func (l *ipLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < limiterCleanupInterval {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP rejects clients that exceed config with 429. A non-positive limit disables it.
func RateLimitByIP(config RateLimitConfig) gin.HandlerFunc {
	if config.RequestsPerWindow <= 0 || config.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerWindow
	}

	l := &ipLimiter{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter := l.get(key)
		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		retryAfter := max(int(reservation.Delay().Seconds()), 1)
		reservation.Cancel()

		c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", config.RequestsPerWindow))
		c.Header("X-RateLimit-Window", config.Window.String())

		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"client_ip":   key,
			"path":        c.Request.URL.Path,
			"retry_after": retryAfter,
		}).Warn("Rate limit exceeded")

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
	}
}
