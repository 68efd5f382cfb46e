package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/auth"
	"github.com/set-night/healthdash/internal/domain"
)

const userIDKey = "userID"

// TokenVerifier resolves a bearer token to the owning user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// UserID returns the authenticated user. Only valid behind Auth.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}

// LookupUserID reports the authenticated user, if any.
func LookupUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := id.(uuid.UUID)
	return userID, ok
}

// Auth returns middleware that verifies the bearer token and stores the user
// id in the request context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		userID, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	msg := err.Error()
	if !errors.Is(err, domain.ErrUnauthenticated) {
		slog.Error("token verification", "error", err)
		msg = "Authentication failed"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msg})
}
