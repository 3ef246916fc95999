package gemini

import (
	"fmt"

	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

// New creates a Google Gemini provider. Model defaults to DefaultModel if empty.
// APIKey must be set.
func New(l log.Logger, cfg llm.Config) (llm.IProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxOutputTokens
	}

	g := &geminiImpl{
		l:      l,
		config: cfg,
	}
	g.httpClient = pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.MaxRetries,
		RetryWait: cfg.RetryBase,
		OnRetry:   g.reportAttempt,
	})
	return g, nil
}
