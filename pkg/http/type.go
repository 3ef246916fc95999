package http

import (
	"context"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	// Timeout bounds each attempt on its own; a slow first attempt does not shorten the next one.
	Timeout time.Duration
	// Retries is the total number of attempts, including the first one.
	Retries int
	// RetryWait is the backoff base. The wait after attempt n is RetryWait * 2^n.
	RetryWait time.Duration
	// NonRetryableStatus lists statuses returned immediately without another attempt.
	NonRetryableStatus []int
	// OnRetry, when set, is called after every failed attempt.
	OnRetry func(ctx context.Context, info AttemptInfo)
	// Wait blocks for d or until ctx is done. Replaced in tests.
	Wait func(ctx context.Context, d time.Duration) error
}

// AttemptInfo describes a failed attempt.
type AttemptInfo struct {
	Attempt     int
	MaxAttempts int
	StatusCode  int
	Err         error
	Duration    time.Duration
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
