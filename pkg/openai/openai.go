package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
)

func (p *openaiImpl) Name() string  { return llm.ProviderOpenAI }
func (p *openaiImpl) Model() string { return p.config.Model }

// Complete sends the prompts to the chat-completions endpoint.
func (p *openaiImpl) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := chatCompletionRequest{
		Model: p.config.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxTokens,
	}
	url := strings.TrimRight(p.config.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + p.config.APIKey}

	body, status, err := p.httpClient.Post(ctx, url, req, headers)
	if err != nil {
		return "", &llm.LLMError{Provider: p.Name(), Status: status, Message: err.Error()}
	}
	if status != http.StatusOK {
		return "", &llm.LLMError{Provider: p.Name(), Status: status, Message: errorMessage(body, status)}
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &llm.LLMError{Provider: p.Name(), Status: status, Message: fmt.Sprintf("failed to parse response: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return "", &llm.LLMError{Provider: p.Name(), Status: status, Message: "no response choices returned"}
	}

	p.l.Debugf(ctx, "openai.Complete: model=%s prompt_tokens=%d completion_tokens=%d",
		resp.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

func (p *openaiImpl) reportAttempt(ctx context.Context, info pkghttp.AttemptInfo) {
	if info.Err != nil {
		p.l.Warnf(ctx, "openai.Complete: attempt %d/%d failed after %dms: %v",
			info.Attempt, info.MaxAttempts, info.Duration.Milliseconds(), info.Err)
		return
	}
	p.l.Warnf(ctx, "openai.Complete: attempt %d/%d failed after %dms: status %d",
		info.Attempt, info.MaxAttempts, info.Duration.Milliseconds(), info.StatusCode)
}

func errorMessage(body []byte, status int) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return http.StatusText(status)
}
