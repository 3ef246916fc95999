package memory

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
)

const defaultSize = 512

type entry struct {
	output    analysis.AnalyzeOutput
	expiresAt time.Time
}

type implCacheRepository struct {
	cache *lru.Cache[string, entry]
	now   func() time.Time
}

// New creates an in-process LRU cache holding at most size analyses.
func New(size int) (repository.CacheRepository, error) {
	return newWithClock(size, time.Now)
}

func newWithClock(size int, now func() time.Time) (*implCacheRepository, error) {
	if size <= 0 {
		size = defaultSize
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &implCacheRepository{cache: cache, now: now}, nil
}
