package memory

import (
	"context"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
)

func (r *implCacheRepository) GetAnalysis(ctx context.Context, key string) (analysis.AnalyzeOutput, error) {
	e, ok := r.cache.Get(key)
	if !ok {
		return analysis.AnalyzeOutput{}, repository.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		r.cache.Remove(key)
		return analysis.AnalyzeOutput{}, repository.ErrCacheMiss
	}
	return e.output, nil
}

// SaveAnalysis stores the output. A non-positive TTL keeps it until evicted.
func (r *implCacheRepository) SaveAnalysis(ctx context.Context, opts repository.SaveAnalysisOptions) error {
	e := entry{output: opts.Output}
	if opts.TTL > 0 {
		e.expiresAt = r.now().Add(opts.TTL)
	}
	r.cache.Add(opts.Key, e)
	return nil
}
