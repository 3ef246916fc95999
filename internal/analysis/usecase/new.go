package usecase

import (
	"time"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

const (
	defaultLimit              = 10
	defaultMaxLimit           = 50
	defaultMentionProbability = 0.7
	defaultVariance           = 0.3
	defaultCacheTTL           = 10 * time.Minute
)

// Config holds tuning for the analysis pipeline.
type Config struct {
	DefaultLimit int
	MaxLimit     int
	// Nil means the default; an explicit zero is honored.
	BrandMentionProbability *float64
	EngagementVariance      *float64
	// Seed fixes the random source so runs are reproducible. Zero seeds from the clock.
	Seed     int64
	CacheTTL time.Duration
}

type implUseCase struct {
	l        log.Logger
	provider llm.IProvider
	cache    repository.CacheRepository
	producer analysis.Producer
	config   Config
	seeds    *seedSource
	now      func() time.Time
}

// New creates the analysis UseCase.
// provider, cache and producer are optional: a nil provider means every analysis is synthesized,
// a nil cache disables caching and a nil producer disables events.
func New(
	l log.Logger,
	provider llm.IProvider,
	cache repository.CacheRepository,
	producer analysis.Producer,
	cfg Config,
) analysis.UseCase {
	return newUseCase(l, provider, cache, producer, cfg)
}

func newUseCase(
	l log.Logger,
	provider llm.IProvider,
	cache repository.CacheRepository,
	producer analysis.Producer,
	cfg Config,
) *implUseCase {
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaultMaxLimit
	}
	if cfg.DefaultLimit <= 0 || cfg.DefaultLimit > cfg.MaxLimit {
		cfg.DefaultLimit = min(defaultLimit, cfg.MaxLimit)
	}
	cfg.BrandMentionProbability = valueOr(cfg.BrandMentionProbability, defaultMentionProbability,
		func(v float64) bool { return v >= 0 && v <= 1 })
	cfg.EngagementVariance = valueOr(cfg.EngagementVariance, defaultVariance,
		func(v float64) bool { return v >= 0 && v < 1 })
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		l:        l,
		provider: provider,
		cache:    cache,
		producer: producer,
		config:   cfg,
		seeds:    newSeedSource(cfg.Seed),
		now:      time.Now,
	}
}

func (uc *implUseCase) corpusOptions() corpusOptions {
	return corpusOptions{
		mentionProbability: *uc.config.BrandMentionProbability,
		variance:           *uc.config.EngagementVariance,
	}
}

// valueOr copies v when it is set and in range, otherwise def.
func valueOr(v *float64, def float64, inRange func(float64) bool) *float64 {
	f := def
	if v != nil && inRange(*v) {
		f = *v
	}
	return &f
}
