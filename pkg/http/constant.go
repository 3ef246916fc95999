package http

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the default per-attempt timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of attempts.
	DefaultRetries = 3
	// DefaultRetryWait is the base of the exponential backoff.
	DefaultRetryWait = 1 * time.Second
)

// defaultNonRetryable are statuses that fail fast: retrying an auth failure only burns quota.
var defaultNonRetryable = []int{http.StatusUnauthorized, http.StatusForbidden}

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
