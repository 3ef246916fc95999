package http

import (
	"brandpulse-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/briefs")
	api.Use(mw.RateLimit())
	{
		api.GET("", h.List)
		api.POST("/generate", h.Generate)
	}
}
