package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/apierror"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window, per-client-IP counter. In-process state is
// enough here: the API runs as a single instance and the limiter only guards
// brute force on login, not fairness across a fleet.
type rateLimiter struct {
	mu      sync.Mutex
	hits    map[string]*window
	limit   int
	period  time.Duration
	stopped chan struct{}
}

type window struct {
	count int
	start time.Time
}

func newRateLimiter(limit int, period time.Duration) *rateLimiter {
	rl := &rateLimiter{
		hits:    make(map[string]*window),
		limit:   limit,
		period:  period,
		stopped: make(chan struct{}),
	}
	go rl.purge()
	return rl
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.hits[key]
	if !ok || now.Sub(w.start) > rl.period {
		rl.hits[key] = &window{count: 1, start: now}
		return true
	}
	w.count++
	return w.count <= rl.limit
}

// purge drops stale windows so the map doesn't grow unbounded.
func (rl *rateLimiter) purge() {
	ticker := time.NewTicker(rl.period)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stopped:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rl.period)
			for key, w := range rl.hits {
				if w.start.Before(cutoff) {
					delete(rl.hits, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RateLimiter limits each client IP to `limit` requests per `period`.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	rl := newRateLimiter(limit, period)
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Muitas requisições. Tente novamente em instantes."))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter guards the credential endpoints against brute force.
func LoginRateLimiter() gin.HandlerFunc {
	return RateLimiter(20, time.Minute)
}
