package openai

import (
	"fmt"

	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

// New creates an OpenAI-compatible chat-completions provider.
// The API key is required; callers without a key must not build a provider at all.
func New(l log.Logger, cfg llm.Config) (llm.IProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	p := &openaiImpl{
		l:      l,
		config: cfg,
	}
	p.httpClient = pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.MaxRetries,
		RetryWait: cfg.RetryBase,
		OnRetry:   p.reportAttempt,
	})
	return p, nil
}
