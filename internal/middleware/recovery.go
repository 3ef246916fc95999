package middleware

import (
	"io"

	"brandpulse-srv/pkg/discord"
	"brandpulse-srv/pkg/log"
	"brandpulse-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope. The stack goes to Discord when configured.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s from %s: %v",
			c.Request.Method, c.Request.URL.Path, c.ClientIP(), recovered)

		response.PanicError(c, recovered, d)
		c.Abort()
	})
}
