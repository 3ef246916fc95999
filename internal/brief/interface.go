package brief

import (
	"context"

	"brandpulse-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Generate analyses one tracker and stores the resulting brief.
	Generate(ctx context.Context, input GenerateInput) (model.Brief, error)
	// GenerateAll produces a brief for every tracker.
	GenerateAll(ctx context.Context) (GenerateAllOutput, error)
}

// Scheduler runs GenerateAll on a fixed interval until ctx is done.
type Scheduler interface {
	Run(ctx context.Context) error
}
