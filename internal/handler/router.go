package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/middleware"
)

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recover(), middleware.Logging())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = h.cfg.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsCfg.ExposeHeaders = []string{"Content-Length"}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.MaxMultipartMemory = h.cfg.MaxUploadBytes()

	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	api := r.Group("", middleware.Auth(h.verifier), middleware.RateLimit(h.limiter, h.cfg.RateLimitPerMinute))
	{
		api.GET("/vitals", h.ListVitals)
		api.POST("/vitals", h.CreateVitals)
		api.GET("/vitals/summary", h.VitalsSummary)
		api.DELETE("/vitals/:id", h.DeleteVitals)

		api.GET("/documents", h.ListDocuments)
		api.GET("/documents/summary", h.DocumentSummary)
		api.POST("/documents/upload", h.UploadDocument)
		api.DELETE("/documents/:id", h.DeleteDocument)

		api.POST("/chat", h.Chat)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	return r
}
