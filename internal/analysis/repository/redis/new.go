package redis

import (
	"brandpulse-srv/internal/analysis/repository"
	"brandpulse-srv/pkg/log"
	pkgRedis "brandpulse-srv/pkg/redis"
)

const keyPrefix = "brandpulse:analysis:"

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
