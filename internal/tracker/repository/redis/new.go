package redis

import (
	"errors"

	"brandpulse-srv/internal/tracker/repository"
	"brandpulse-srv/pkg/log"
	pkgRedis "brandpulse-srv/pkg/redis"
)

const (
	// hashKey maps tracker id to its JSON document.
	hashKey = "brandpulse:trackers"
	// indexKey orders tracker ids by creation time.
	indexKey = "brandpulse:trackers:index"

	maxUpdateAttempts = 5
)

var errUpdateConflict = errors.New("tracker changed concurrently, update aborted")

type implTrackerRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.TrackerRepository {
	return &implTrackerRepository{
		redis: redis,
		l:     l,
	}
}
