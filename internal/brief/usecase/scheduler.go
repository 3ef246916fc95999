package usecase

import (
	"context"
	"time"

	"brandpulse-srv/internal/brief"
	"brandpulse-srv/pkg/log"
)

type implScheduler struct {
	l        log.Logger
	uc       brief.UseCase
	interval time.Duration
}

// NewScheduler runs uc.GenerateAll every interval.
func NewScheduler(l log.Logger, uc brief.UseCase, interval time.Duration) brief.Scheduler {
	return &implScheduler{
		l:        l,
		uc:       uc,
		interval: interval,
	}
}

// Run blocks until ctx is done. The first run happens after one interval.
func (s *implScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.l.Infof(ctx, "brief.usecase.Scheduler: Started with interval %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.l.Infof(ctx, "brief.usecase.Scheduler: Stopped")
			return nil
		case <-ticker.C:
			if _, err := s.uc.GenerateAll(ctx); err != nil && ctx.Err() == nil {
				s.l.Errorf(ctx, "brief.usecase.Scheduler: GenerateAll failed: %v", err)
			}
		}
	}
}
