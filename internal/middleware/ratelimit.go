package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitPerBusiness throttles webhook deliveries per business id so a
// chatty platform cannot starve the completion API for other tenants.
func RateLimitPerBusiness(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(c *gin.Context) {
		businessID := c.Param("businessId")
		if businessID == "" {
			c.Next()
			return
		}

		mu.Lock()
		limiter, ok := limiters[businessID]
		if !ok {
			limiter = rate.NewLimiter(r, burst)
			limiters[businessID] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}
