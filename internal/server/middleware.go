package server

import (
	"fmt"
	"strconv"
	"time"

	"tutorbook/internal/api"
	"tutorbook/internal/logger"
	"tutorbook/internal/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}

// RecoveryMiddleware turns a handler panic into the regular 500 envelope.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"request_id", requestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		api.RespondError(c, api.Datastore(fmt.Errorf("internal error: %v", recovered)))
	})
}
