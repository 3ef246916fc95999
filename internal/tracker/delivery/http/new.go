package http

import (
	"brandpulse-srv/internal/middleware"
	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/pkg/discord"
	"brandpulse-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      tracker.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc tracker.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
