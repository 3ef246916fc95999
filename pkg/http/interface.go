package http

import "context"

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	if cfg.NonRetryableStatus == nil {
		cfg.NonRetryableStatus = defaultNonRetryable
	}
	if cfg.Wait == nil {
		cfg.Wait = sleepContext
	}
	return &clientImpl{
		client: defaultHTTPClient(),
		config: cfg,
	}
}
