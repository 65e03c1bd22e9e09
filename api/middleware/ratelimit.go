// ABOUTME: Rate limiting middleware backed by golang.org/x/time/rate
// ABOUTME: Single shared limiter; expected usage is one user on one box

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond the given sustained rate with the given
// burst allowance.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too Many Requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
