package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration.
type Config struct {
	// RequestsPerMinute is the per-client budget.
	RequestsPerMinute int
	// Burst is the token bucket depth; defaults to RequestsPerMinute.
	Burst int
}

// DefaultConfig returns the default per-IP budget. One analysis fans out
// into up to ~30 GitHub calls, so the front door stays conservative.
func DefaultConfig() Config {
	return Config{RequestsPerMinute: 30}
}

// maxTrackedClients caps the limiter map; beyond it the map is reset,
// which at worst refills a few buckets early.
const maxTrackedClients = 10000

// Limiter provides in-memory per-key token bucket rate limiting.
type Limiter struct {
	cfg Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLimiter creates a Limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	return &Limiter{
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	if len(l.limiters) > maxTrackedClients {
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(l.cfg.RequestsPerMinute)/60.0), l.cfg.Burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware limits requests per client IP and sets the standard
// X-RateLimit headers.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.RequestsPerMinute))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("Retry-After", strconv.Itoa(int(time.Minute.Seconds())))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "rate limit exceeded, try again shortly",
		})
	}
}
