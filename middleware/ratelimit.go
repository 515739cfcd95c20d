package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window per-IP limiter. Scoring requests are
// cheap but unauthenticated, so the window is deliberately tight.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter returns a middleware allowing limit requests per period for
// each client IP. A background sweep drops expired windows.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for range ticker.C {
			rl.sweep()
		}
	}()

	return func(c *gin.Context) {
		retryAfter, allowed := rl.allow(c.ClientIP())
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *rateLimiter) allow(ip string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.windows[ip] = &window{count: 1, resetAt: now.Add(rl.period)}
		return 0, true
	}

	if w.count >= rl.limit {
		return w.resetAt.Sub(now), false
	}

	w.count++
	return 0, true
}

func (rl *rateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, ip)
		}
	}
}
