package repository

import (
	"context"

	"brandpulse-srv/internal/analysis"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetAnalysis returns ErrCacheMiss when nothing is stored under key.
	GetAnalysis(ctx context.Context, key string) (analysis.AnalyzeOutput, error)
	SaveAnalysis(ctx context.Context, opts SaveAnalysisOptions) error
}
