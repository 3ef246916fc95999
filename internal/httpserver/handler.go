package httpserver

import (
	"context"

	"brandpulse-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.config.CORS, srv.config.RateLimit)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	if err := srv.setupAnalysisDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupTrackerDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupBriefDomain(ctx, r, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: permissive (all origins)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %d allowed origins", len(srv.config.CORS.AllowedOrigins))
	}
	if srv.config.RateLimit.Enabled {
		srv.l.Infof(ctx, "Rate limit: %d requests per %s per IP", srv.config.RateLimit.Limit, srv.config.RateLimit.Window)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs (development only)
	if srv.environment != "production" {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
