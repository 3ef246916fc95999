package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"brandpulse-srv/internal/middleware"
	trackerHTTP "brandpulse-srv/internal/tracker/delivery/http"
	"brandpulse-srv/internal/tracker/repository"
	trackerMemory "brandpulse-srv/internal/tracker/repository/memory"
	trackerRedis "brandpulse-srv/internal/tracker/repository/redis"
	trackerUsecase "brandpulse-srv/internal/tracker/usecase"
)

func (srv *HTTPServer) setupTrackerDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var repo repository.TrackerRepository
	if srv.redis != nil {
		repo = trackerRedis.New(srv.redis, srv.l)
	} else {
		repo = trackerMemory.New()
	}

	uc := trackerUsecase.New(srv.l, repo)
	srv.trackerUC = uc

	handler := trackerHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Tracker domain registered")
	return nil
}
