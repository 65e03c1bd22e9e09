// ABOUTME: Request logging middleware
// ABOUTME: Logs method, path, status and timing for every request

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"newsdesk-api/core/interfaces"
)

// RequestLogging logs every request with its status and duration.
func RequestLogging(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": duration.Milliseconds(),
			"remote_ip":   c.ClientIP(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("Request failed", fields)
		case duration > 5*time.Second:
			logger.Warn("Slow request", fields)
		default:
			logger.Info("Request completed", fields)
		}
	}
}
