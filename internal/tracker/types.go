package tracker

import (
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

const (
	MaxNameLength  = 100
	MaxNotesLength = 500
)

type ListInput struct {
	Brand    string
	Platform string
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Trackers  []model.Tracker
	Paginator paginator.Paginator
}

type CreateInput struct {
	Influencer string
	Brand      string
	Platform   string
	Notes      string
}

// UpdateInput changes only the non-nil fields.
type UpdateInput struct {
	ID         string
	Influencer *string
	Brand      *string
	Platform   *string
	Notes      *string
}
