package repository

import (
	"context"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

//go:generate mockery --name BriefRepository
type BriefRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Brief, error)
	List(ctx context.Context, opts ListOptions) ([]model.Brief, paginator.Paginator, error)
}
