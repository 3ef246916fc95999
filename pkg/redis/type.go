package redis

import (
	"fmt"
	"net"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings of the shared cache and tracker store.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// PoolSize of 0 keeps the go-redis default.
	PoolSize int
}

// Addr is host:port, IPv6-safe.
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c RedisConfig) validate() error {
	if c.Host == "" {
		return ErrHostRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.DB < 0 {
		return fmt.Errorf("redis: db must not be negative, got %d", c.DB)
	}
	return nil
}

type redisImpl struct {
	client *goredis.Client
}
