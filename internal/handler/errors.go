package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/middleware"
)

// writeError maps classified errors to their status codes. Everything else
// is a 500 carrying the underlying message, and gets reported.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		attrs := []any{"method", c.Request.Method, "path", c.FullPath()}
		if id, ok := middleware.LookupUserID(c); ok {
			attrs = append(attrs, "user_id", id)
		}
		slog.Error("request failed", append([]any{"error", err}, attrs...)...)
		if h.reporter != nil {
			h.reporter.Report(err, attrs...)
		}
	}

	c.JSON(status, gin.H{"detail": err.Error()})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.BadInput("Invalid id: %q", c.Param("id"))
	}
	return id, nil
}
