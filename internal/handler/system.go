package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/config"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": config.ServiceName, "version": config.ServiceVersion})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
}
