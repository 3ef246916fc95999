package middleware

import (
	"brandpulse-srv/config"
	"brandpulse-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *ipRateLimiter
}

// New builds the shared middleware set. The rate limiter is nil when rate limiting is disabled.
func New(l log.Logger, corsCfg config.CORSConfig, rateCfg config.RateLimitConfig) Middleware {
	m := Middleware{
		l:    l,
		cors: corsCfg,
	}
	if rateCfg.Enabled && rateCfg.Limit > 0 && rateCfg.Window > 0 {
		m.limiter = newIPRateLimiter(rateCfg.Limit, rateCfg.Window)
	}
	return m
}
