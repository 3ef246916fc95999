package http

import (
	"brandpulse-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/trackers")
	api.Use(mw.RateLimit())
	{
		api.GET("", h.List)
		api.POST("", h.Create)
		api.GET("/:id", h.Detail)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}
}
