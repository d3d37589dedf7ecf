package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "http request", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "http request", attrs...)
		default:
			slog.InfoContext(ctx, "http request", attrs...)
		}
	}
}
