package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"
)

func defaultHTTPClient() *http.Client {
	// Deadlines are applied per attempt through the request context.
	return &http.Client{}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = b
	}
	h := make(map[string]string, len(headers)+1)
	h["Content-Type"] = "application/json"
	for k, v := range headers {
		h[k] = v
	}
	return c.do(ctx, http.MethodPost, url, payload, h)
}

// do runs the request with the configured retry policy. A non-2xx response that survives all
// attempts is returned with its body and status and a nil error; transport failures return an error.
func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	var (
		body    []byte
		status  int
		lastErr error
	)
	for attempt := 1; attempt <= c.config.Retries; attempt++ {
		start := time.Now()
		body, status, lastErr = c.attempt(ctx, method, url, payload, headers)
		if lastErr == nil && status >= 200 && status < 300 {
			return body, status, nil
		}

		if c.config.OnRetry != nil {
			c.config.OnRetry(ctx, AttemptInfo{
				Attempt:     attempt,
				MaxAttempts: c.config.Retries,
				StatusCode:  status,
				Err:         lastErr,
				Duration:    time.Since(start),
			})
		}

		if lastErr == nil && slices.Contains(c.config.NonRetryableStatus, status) {
			return body, status, nil
		}
		if ctx.Err() != nil {
			return nil, status, fmt.Errorf("request cancelled after %d attempts: %w", attempt, ctx.Err())
		}
		if attempt == c.config.Retries {
			break
		}
		if err := c.config.Wait(ctx, c.config.RetryWait*time.Duration(1<<attempt)); err != nil {
			return nil, status, fmt.Errorf("request cancelled after %d attempts: %w", attempt, err)
		}
	}
	if lastErr != nil {
		return nil, status, fmt.Errorf("request failed after %d attempts: %w", c.config.Retries, lastErr)
	}
	return body, status, nil
}

func (c *clientImpl) attempt(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
