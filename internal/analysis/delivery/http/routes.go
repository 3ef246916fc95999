package http

import (
	"brandpulse-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/sentiment")
	api.Use(mw.RateLimit())
	{
		api.POST("/analyze", h.Analyze)
		api.GET("/posts", h.ListPosts)
	}
}
