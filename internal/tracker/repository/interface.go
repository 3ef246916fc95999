package repository

import (
	"context"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

//go:generate mockery --name TrackerRepository
type TrackerRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Tracker, error)
	Detail(ctx context.Context, id string) (model.Tracker, error)
	List(ctx context.Context, opts ListOptions) ([]model.Tracker, paginator.Paginator, error)
	All(ctx context.Context) ([]model.Tracker, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Tracker, error)
	Delete(ctx context.Context, id string) error
}
