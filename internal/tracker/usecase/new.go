package usecase

import (
	"time"

	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/internal/tracker/repository"
	"brandpulse-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.TrackerRepository
	now  func() time.Time
}

// New creates the tracker UseCase.
func New(l log.Logger, repo repository.TrackerRepository) tracker.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
