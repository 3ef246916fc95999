package llm

import (
	"fmt"
	"time"

	"brandpulse-srv/config"
	"brandpulse-srv/pkg/gemini"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
	"brandpulse-srv/pkg/openai"
)

// Connect builds the configured completion provider.
// It returns (nil, nil) when no API key is set: the service then runs in offline mode.
func Connect(l log.Logger, cfg config.LLMConfig) (llm.IProvider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	pcfg := ToProviderConfig(cfg)
	switch pcfg.Provider {
	case llm.ProviderOpenAI, "":
		return openai.New(l, pcfg)
	case llm.ProviderGemini:
		return gemini.New(l, pcfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// ToProviderConfig converts the viper-shaped settings to the gateway config.
func ToProviderConfig(cfg config.LLMConfig) llm.Config {
	return llm.Config{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		Timeout:     time.Duration(cfg.TimeoutMS) * time.Millisecond,
		MaxRetries:  cfg.MaxRetries,
		RetryBase:   time.Duration(cfg.RetryBaseMS) * time.Millisecond,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxTokens,
	}
}
