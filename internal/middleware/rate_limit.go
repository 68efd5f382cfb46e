package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RateCounter increments and returns the user's request count in the current
// one-minute window.
type RateCounter interface {
	CheckAndIncrementRateLimit(ctx context.Context, userID uuid.UUID) (int32, error)
}

// RateLimit returns middleware that enforces a per-minute request limit for
// the authenticated user. It must run after Auth. A limit of 0 disables it.
func RateLimit(counter RateCounter, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 {
			c.Next()
			return
		}

		userID := UserID(c)

		count, err := counter.CheckAndIncrementRateLimit(c.Request.Context(), userID)
		if err != nil {
			slog.Error("rate limit check failed", "error", err, "user_id", userID)
			c.Next()
			return
		}

		if int(count) > perMinute {
			slog.Debug("rate limited", "user_id", userID, "count", count, "limit", perMinute)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests. Please wait a moment."})
			return
		}

		c.Next()
	}
}
