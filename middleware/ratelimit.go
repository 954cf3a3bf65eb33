package middleware

import (
	"sync"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimitClient struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter is a per-IP token bucket for the auth endpoints.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	r       rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	// drop buckets for IPs not seen recently
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, c := range rl.clients {
				if time.Since(c.seen) > 3*time.Minute {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[ip] = &rateLimitClient{lim: l, seen: time.Now()}
	return l
}

func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			utils.TooManyRequests(c, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
