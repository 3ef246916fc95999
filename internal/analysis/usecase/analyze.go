package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/llm"
)

// Analyze runs corpus → prompt → gateway → normalizer (or fallback) → aggregator.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	startedAt := uc.now()

	input, err := uc.validateAnalyzeInput(input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	key := cacheKey(input.Influencer, input.Brand, input.Platform, input.Limit)
	if out, ok := uc.cachedAnalysis(ctx, key); ok {
		return out, nil
	}

	rng := uc.seeds.next()
	posts := generatePosts(rng, startedAt, corpusInput{
		influencer: input.Influencer,
		brand:      input.Brand,
		platform:   input.Platform,
		count:      input.Limit,
	}, uc.corpusOptions())

	result, source, err := uc.analyzePosts(ctx, rng, posts, input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	report, err := aggregate(posts, result, input.Brand)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Failed to aggregate %d posts: %v", len(posts), err)
		return analysis.AnalyzeOutput{}, err
	}

	finishedAt := uc.now()
	meta := analysis.Metadata{
		RequestID:  requestID(ctx),
		Influencer: input.Influencer,
		Brand:      input.Brand,
		Platform:   input.Platform,
		Source:     source,
		DurationMs: finishedAt.Sub(startedAt).Milliseconds(),
		AnalyzedAt: finishedAt,
	}
	if source == analysis.SourceAI {
		meta.Provider = uc.provider.Name()
		meta.Model = uc.provider.Model()
	}

	out := analysis.AnalyzeOutput{
		Analysis: result,
		Report:   report,
		Posts:    posts,
		Metadata: meta,
	}

	uc.storeAnalysis(ctx, key, out)
	uc.publishCompleted(ctx, out)

	uc.l.Infof(ctx, "analysis.usecase.Analyze: influencer=%s brand=%s platform=%s source=%s score=%d duration_ms=%d",
		input.Influencer, input.Brand, input.Platform, source, result.SentimentScore, meta.DurationMs)
	return out, nil
}

// analyzePosts asks the provider for an analysis and falls back to a synthesized one on any failure.
// Only a cancelled request context is returned as an error.
func (uc *implUseCase) analyzePosts(
	ctx context.Context,
	rng *rand.Rand,
	posts []model.Post,
	input analysis.AnalyzeInput,
) (model.AnalysisResult, string, error) {
	if uc.provider == nil {
		return synthesizeAnalysis(rng, input.Brand, input.Influencer, posts), analysis.SourceFallback, nil
	}

	started := time.Now()
	raw, err := uc.provider.Complete(ctx, systemPrompt, buildPrompt(posts, input.Brand, input.Influencer))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.AnalysisResult{}, "", ctxErr
		}
		if llm.IsAuthError(err) {
			uc.l.Errorf(ctx, "analysis.usecase.Analyze: LLM credentials rejected after %dms, using fallback: %v",
				time.Since(started).Milliseconds(), err)
		} else {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: LLM completion failed after %dms, using fallback: %v",
				time.Since(started).Milliseconds(), err)
		}
		return synthesizeAnalysis(rng, input.Brand, input.Influencer, posts), analysis.SourceFallback, nil
	}

	result, err := normalizeResponse(raw, input.Brand, input.Influencer)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: Failed to normalize LLM response after %dms, using fallback: %v",
			time.Since(started).Milliseconds(), err)
		return synthesizeAnalysis(rng, input.Brand, input.Influencer, posts), analysis.SourceFallback, nil
	}
	return result, analysis.SourceAI, nil
}

// GeneratePosts returns a synthetic corpus without running the analysis.
func (uc *implUseCase) GeneratePosts(ctx context.Context, input analysis.PostsInput) (analysis.PostsOutput, error) {
	input, err := uc.validatePostsInput(input)
	if err != nil {
		return analysis.PostsOutput{}, err
	}

	posts := generatePosts(uc.seeds.next(), uc.now(), corpusInput{
		influencer: input.Influencer,
		brand:      input.Brand,
		platform:   input.Platform,
		count:      input.Limit,
	}, uc.corpusOptions())

	return analysis.PostsOutput{Posts: posts}, nil
}

func (uc *implUseCase) validateAnalyzeInput(input analysis.AnalyzeInput) (analysis.AnalyzeInput, error) {
	input.Influencer = strings.TrimSpace(input.Influencer)
	input.Brand = strings.TrimSpace(input.Brand)

	if input.Influencer == "" || len(input.Influencer) > analysis.MaxNameLength {
		return input, analysis.ErrInvalidInfluencer
	}
	if input.Brand == "" || len(input.Brand) > analysis.MaxNameLength {
		return input, analysis.ErrInvalidBrand
	}

	platform, limit, err := uc.validateCorpusShape(input.Platform, input.Limit)
	if err != nil {
		return input, err
	}
	input.Platform, input.Limit = platform, limit
	return input, nil
}

func (uc *implUseCase) validatePostsInput(input analysis.PostsInput) (analysis.PostsInput, error) {
	input.Influencer = strings.TrimSpace(input.Influencer)
	input.Brand = strings.TrimSpace(input.Brand)

	if input.Influencer == "" || len(input.Influencer) > analysis.MaxNameLength {
		return input, analysis.ErrInvalidInfluencer
	}
	if len(input.Brand) > analysis.MaxNameLength {
		return input, analysis.ErrInvalidBrand
	}

	platform, limit, err := uc.validateCorpusShape(input.Platform, input.Limit)
	if err != nil {
		return input, err
	}
	input.Platform, input.Limit = platform, limit
	return input, nil
}

func (uc *implUseCase) validateCorpusShape(platform model.Platform, limit int) (model.Platform, int, error) {
	if platform == "" {
		platform = model.PlatformInstagram
	}
	platform = model.Platform(strings.ToLower(string(platform)))
	if !platform.IsValid() {
		return "", 0, analysis.ErrInvalidPlatform
	}

	if limit == 0 {
		limit = uc.config.DefaultLimit
	}
	if limit < 1 || limit > uc.config.MaxLimit {
		return "", 0, analysis.ErrInvalidLimit
	}
	return platform, limit, nil
}

func (uc *implUseCase) cachedAnalysis(ctx context.Context, key string) (analysis.AnalyzeOutput, bool) {
	if uc.cache == nil {
		return analysis.AnalyzeOutput{}, false
	}

	out, err := uc.cache.GetAnalysis(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: Failed to read analysis cache: %v", err)
		}
		return analysis.AnalyzeOutput{}, false
	}

	out.Metadata.Cached = true
	out.Metadata.RequestID = requestID(ctx)
	return out, true
}

func (uc *implUseCase) storeAnalysis(ctx context.Context, key string, out analysis.AnalyzeOutput) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SaveAnalysis(ctx, repository.SaveAnalysisOptions{
		Key:    key,
		Output: out,
		TTL:    uc.config.CacheTTL,
	}); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: Failed to cache analysis: %v", err)
	}
}

func (uc *implUseCase) publishCompleted(ctx context.Context, out analysis.AnalyzeOutput) {
	if uc.producer == nil {
		return
	}
	event := analysis.AnalysisCompleted{
		RequestID:        out.Metadata.RequestID,
		Influencer:       out.Metadata.Influencer,
		Brand:            out.Metadata.Brand,
		Platform:         out.Metadata.Platform,
		Source:           out.Metadata.Source,
		OverallSentiment: out.Analysis.OverallSentiment,
		SentimentScore:   out.Analysis.SentimentScore,
		BrandAlignment:   out.Analysis.BrandAlignment,
		TotalPosts:       out.Report.TotalPosts,
		Tags:             out.Report.Tags,
		CompletedAt:      out.Metadata.AnalyzedAt,
	}
	if err := uc.producer.PublishAnalysisCompleted(ctx, event); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Failed to publish analysis event: %v", err)
	}
}
