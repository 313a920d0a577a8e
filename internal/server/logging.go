package server

import (
	"time"

	"tutorbook/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware logs every completed request once.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		args := []any{
			"request_id", requestID(c),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= 500 {
			logger.Warn("HTTP request failed", args...)
			return
		}
		logger.Info("HTTP request", args...)
	}
}
