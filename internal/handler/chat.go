package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/middleware"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.BadInput("%s", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.RequestTimeout)
	defer cancel()

	reply, err := h.chat.Respond(ctx, middleware.UserID(c), req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
