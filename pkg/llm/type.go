package llm

import "time"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is the provider-independent gateway configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	RetryBase   time.Duration
	Temperature float32
	MaxTokens   int
}
