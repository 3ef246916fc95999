package redis

import (
	"context"
	"encoding/json"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
	pkgRedis "brandpulse-srv/pkg/redis"
)

func (r *implCacheRepository) GetAnalysis(ctx context.Context, key string) (analysis.AnalyzeOutput, error) {
	data, err := r.redis.Get(ctx, keyPrefix+key)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return analysis.AnalyzeOutput{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "analysis.repository.redis.GetAnalysis: Failed to read cache: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	var out analysis.AnalyzeOutput
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.GetAnalysis: Failed to unmarshal cached analysis: %v", err)
		return analysis.AnalyzeOutput{}, err
	}
	return out, nil
}

func (r *implCacheRepository) SaveAnalysis(ctx context.Context, opts repository.SaveAnalysisOptions) error {
	data, err := json.Marshal(opts.Output)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, keyPrefix+opts.Key, data, opts.TTL); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.SaveAnalysis: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
