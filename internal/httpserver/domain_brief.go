package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	briefHTTP "brandpulse-srv/internal/brief/delivery/http"
	briefMemory "brandpulse-srv/internal/brief/repository/memory"
	briefUsecase "brandpulse-srv/internal/brief/usecase"
	"brandpulse-srv/internal/middleware"
)

// setupBriefDomain depends on the analysis and tracker domains.
func (srv *HTTPServer) setupBriefDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := briefUsecase.New(srv.l, briefMemory.New(0), srv.trackerUC, srv.analysisUC, briefUsecase.Config{
		Concurrency: srv.config.Briefs.Concurrency,
		PostLimit:   srv.config.Briefs.PostLimit,
	})
	srv.briefUC = uc

	handler := briefHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Brief domain registered (scheduler enabled: %t)", srv.config.Briefs.Enabled)
	return nil
}
