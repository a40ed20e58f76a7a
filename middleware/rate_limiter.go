package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

type windowCounter struct {
	count   int
	resetAt time.Time
}

var (
	counterMu sync.Mutex
	counters  = map[string]*windowCounter{}
)

// RateLimiter enforces a fixed-window request budget per IP, method, and
// endpoint. Counters live in-process; the service has no cross-process
// shared state to coordinate.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint

		now := time.Now()
		counterMu.Lock()
		// drop windows that have already closed so the map doesn't grow
		// with every client/endpoint pair ever seen
		for k, c := range counters {
			if now.After(c.resetAt) {
				delete(counters, k)
			}
		}
		w, ok := counters[key]
		if !ok || now.After(w.resetAt) {
			w = &windowCounter{resetAt: now.Add(window)}
			counters[key] = w
		}
		w.count++
		count := w.count
		resetAt := w.resetAt
		counterMu.Unlock()

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Rate limit exceeded, try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
