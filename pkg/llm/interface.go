package llm

import "context"

// IProvider is a chat-completion backend.
// Implementations are stateless and safe for concurrent use.
type IProvider interface {
	// Complete sends a system and a user prompt and returns the raw model text.
	// Failures after the retry budget is spent are reported as *LLMError.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
	Model() string
}
