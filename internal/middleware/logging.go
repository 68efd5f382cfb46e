package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging returns middleware that logs request processing time.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if id, ok := LookupUserID(c); ok {
			attrs = append(attrs, "user_id", id)
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			slog.Warn("request failed", attrs...)
			return
		}
		slog.Debug("request processed", attrs...)
	}
}
