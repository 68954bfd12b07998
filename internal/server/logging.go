package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
)

// Probes hit these constantly; logging them would drown out the booking
// traffic that matters.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if quietPaths[path] {
			return
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}

		if len(c.Errors) > 0 {
			logger.Error("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		logger.Info("request", fields...)
	}
}
