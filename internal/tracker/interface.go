package tracker

import (
	"context"

	"brandpulse-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Tracker, error)
	Create(ctx context.Context, input CreateInput) (model.Tracker, error)
	Update(ctx context.Context, input UpdateInput) (model.Tracker, error)
	Delete(ctx context.Context, id string) error
	// All returns every tracker, newest first. Used by the brief scheduler.
	All(ctx context.Context) ([]model.Tracker, error)
}
