package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out one token bucket per caller address.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func (cl *clientLimiters) get(addr string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if lim, ok := cl.buckets[addr]; ok {
		return lim
	}
	lim := rate.NewLimiter(cl.limit, cl.burst)
	cl.buckets[addr] = lim
	return lim
}

// RateLimit throttles each client address to limit requests per second
// with the given burst. When ipHeader is non-empty the client address is
// taken from that header instead of the connection, for deployments
// behind a reverse proxy.
func RateLimit(limit rate.Limit, burst int, ipHeader string) gin.HandlerFunc {
	cl := &clientLimiters{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
	}
	return func(c *gin.Context) {
		addr := c.ClientIP()
		if ipHeader != "" {
			if v := c.GetHeader(ipHeader); v != "" {
				addr = v
			}
		}
		if !cl.get(addr).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
