package memory

import (
	"sync"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker/repository"
)

type implTrackerRepository struct {
	mu       sync.RWMutex
	trackers map[string]model.Tracker
	// order holds ids oldest first.
	order []string
}

// New creates an in-process tracker store. Contents are lost on restart.
func New() repository.TrackerRepository {
	return &implTrackerRepository{
		trackers: make(map[string]model.Tracker),
	}
}
