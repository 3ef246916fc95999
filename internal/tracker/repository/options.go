package repository

import (
	"time"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

type CreateOptions struct {
	ID         string
	Influencer string
	Brand      string
	Platform   model.Platform
	Notes      string
	CreatedAt  time.Time
}

// ListOptions filters are exact after lowercasing; empty means any.
type ListOptions struct {
	Brand    string
	Platform model.Platform
	Paginate paginator.PaginateQuery
}

// UpdateOptions replaces every mutable field of the tracker.
type UpdateOptions struct {
	ID         string
	Influencer string
	Brand      string
	Platform   model.Platform
	Notes      string
	UpdatedAt  time.Time
}
