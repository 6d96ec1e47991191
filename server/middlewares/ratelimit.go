package middlewares

import (
	"sync"

	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit enforces a per-client-IP token bucket.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters[ip] = l
		}
		mu.Unlock()
		if !l.Allow() {
			common.ErrorStrResp(c, "too many requests", 429)
			return
		}
		c.Next()
	}
}
