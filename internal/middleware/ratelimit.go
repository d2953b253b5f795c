package middleware

import (
	"net/http" // HTTP status codes
	"sync"     // Mutex for the client map
	"time"     // Idle-client eviction window

	"github.com/gin-gonic/gin" // Gin web framework
	"golang.org/x/time/rate"   // Token-bucket rate limiting
)

// RateLimiter throttles login attempts per client IP.
type RateLimiter struct {
	limit   rate.Limit                // Refill rate
	burst   int                       // Bucket size
	window  time.Duration             // Idle window after which a client entry is evicted
	mu      sync.Mutex                // Guards clients
	clients map[string]*clientLimiter // One bucket per client IP
}

type clientLimiter struct {
	limiter  *rate.Limiter // Token bucket for this client
	lastSeen time.Time     // Last request time, used for eviction
}

// NewRateLimiter creates a limiter for the provided attempts-per-minute
// budget. A non-positive budget disables limiting.
func NewRateLimiter(attemptsPerMinute int) *RateLimiter {
	if attemptsPerMinute <= 0 {
		return nil // Limiting disabled
	}
	burst := attemptsPerMinute / 10 // Allow a short burst within the budget
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(attemptsPerMinute) / 60.0), // Per-second refill
		burst:   burst,
		window:  5 * time.Minute, // Forget clients idle this long
		clients: make(map[string]*clientLimiter),
	}
}

// Handler returns the gin middleware enforcing the limit.
func (r *RateLimiter) Handler() gin.HandlerFunc {
	// A nil limiter passes everything through
	if r == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		// One bucket per client IP
		if !r.getLimiter(c.ClientIP()).Allow() {
			// Budget exhausted, reject with 429
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
			return
		}
		c.Next()
	}
}

// getLimiter returns the bucket for a client, creating it on first use
// and evicting idle entries while the lock is held.
func (r *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.clients[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	limiter := rate.NewLimiter(r.limit, r.burst)
	r.clients[key] = &clientLimiter{limiter: limiter, lastSeen: now}
	// Evict clients that have been idle past the window
	for k, entry := range r.clients {
		if now.Sub(entry.lastSeen) > r.window {
			delete(r.clients, k)
		}
	}
	return limiter
}
