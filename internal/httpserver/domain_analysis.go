package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"brandpulse-srv/internal/analysis"
	analysisHTTP "brandpulse-srv/internal/analysis/delivery/http"
	analysisProducer "brandpulse-srv/internal/analysis/delivery/kafka/producer"
	"brandpulse-srv/internal/analysis/repository"
	analysisMemory "brandpulse-srv/internal/analysis/repository/memory"
	analysisRedis "brandpulse-srv/internal/analysis/repository/redis"
	analysisUsecase "brandpulse-srv/internal/analysis/usecase"
	"brandpulse-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var cacheRepo repository.CacheRepository
	if srv.redis != nil {
		cacheRepo = analysisRedis.New(srv.redis, srv.l)
	} else {
		memRepo, err := analysisMemory.New(srv.config.Analysis.CacheSize)
		if err != nil {
			return fmt.Errorf("analysis cache: %w", err)
		}
		cacheRepo = memRepo
	}

	var producer analysis.Producer
	if srv.kafkaProducer != nil {
		producer = analysisProducer.New(srv.l, srv.kafkaProducer)
	}

	cfg := srv.config.Analysis
	uc := analysisUsecase.New(srv.l, srv.llm, cacheRepo, producer, analysisUsecase.Config{
		DefaultLimit:            cfg.DefaultLimit,
		MaxLimit:                cfg.MaxLimit,
		BrandMentionProbability: &cfg.BrandMentionProbability,
		EngagementVariance:      &cfg.EngagementVariance,
		Seed:                    cfg.Seed,
		CacheTTL:                cfg.CacheTTL,
	})
	srv.analysisUC = uc

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	mode := "fallback only"
	if srv.llm != nil {
		mode = srv.llm.Name() + "/" + srv.llm.Model()
	}
	srv.l.Infof(ctx, "Analysis domain registered (%s)", mode)
	return nil
}
