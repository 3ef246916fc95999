package brief

import (
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

type ListInput struct {
	// TrackerID narrows the list to one tracker when set.
	TrackerID string
	Paginate  paginator.PaginateQuery
}

type ListOutput struct {
	Briefs    []model.Brief
	Paginator paginator.Paginator
}

type GenerateInput struct {
	TrackerID string
}

type GenerateAllOutput struct {
	Trackers  int
	Generated int
	Failed    int
}
