package repository

import (
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

type CreateOptions struct {
	Brief model.Brief
}

type ListOptions struct {
	TrackerID string
	Paginate  paginator.PaginateQuery
}
