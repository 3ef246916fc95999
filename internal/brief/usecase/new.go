package usecase

import (
	"time"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/brief"
	"brandpulse-srv/internal/brief/repository"
	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/pkg/log"
)

const (
	defaultConcurrency = 4
	defaultPostLimit   = 5
)

type Config struct {
	// Concurrency bounds the analyses running at once in GenerateAll.
	Concurrency int
	// PostLimit is the corpus size analysed per brief.
	PostLimit int
}

type implUseCase struct {
	l        log.Logger
	repo     repository.BriefRepository
	trackers tracker.UseCase
	analysis analysis.UseCase
	config   Config
	now      func() time.Time
}

// New creates the brief UseCase.
func New(
	l log.Logger,
	repo repository.BriefRepository,
	trackerUC tracker.UseCase,
	analysisUC analysis.UseCase,
	cfg Config,
) brief.UseCase {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.PostLimit <= 0 {
		cfg.PostLimit = defaultPostLimit
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		trackers: trackerUC,
		analysis: analysisUC,
		config:   cfg,
		now:      time.Now,
	}
}
