package memory

import (
	"sync"

	"brandpulse-srv/internal/brief/repository"
	"brandpulse-srv/internal/model"
)

const defaultCapacity = 1000

type implBriefRepository struct {
	mu       sync.RWMutex
	capacity int
	// briefs is ordered oldest first.
	briefs []model.Brief
}

// New creates an in-process brief store keeping the latest capacity briefs.
func New(capacity int) repository.BriefRepository {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &implBriefRepository{capacity: capacity}
}
