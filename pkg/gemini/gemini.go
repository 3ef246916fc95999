package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
)

// Sent as a header so the key stays out of request URLs.
const apiKeyHeader = "x-goog-api-key"

func (g *geminiImpl) Name() string  { return llm.ProviderGemini }
func (g *geminiImpl) Model() string { return g.config.Model }

// Complete generates content for the given system instruction and user prompt.
func (g *geminiImpl) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s:generateContent", strings.TrimRight(g.config.BaseURL, "/"), url.PathEscape(g.config.Model))
	headers := map[string]string{apiKeyHeader: g.config.APIKey}

	req := Request{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: userPrompt}},
			},
		},
		GenerationConfig: GenerationConfig{
			Temperature:     g.config.Temperature,
			MaxOutputTokens: g.config.MaxTokens,
		},
	}
	if systemPrompt != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: systemPrompt}}}
	}

	body, statusCode, err := g.httpClient.Post(ctx, endpoint, req, headers)
	if err != nil {
		return "", &llm.LLMError{Provider: g.Name(), Status: statusCode, Message: err.Error()}
	}
	if statusCode != http.StatusOK {
		return "", &llm.LLMError{Provider: g.Name(), Status: statusCode, Message: errorMessage(body, statusCode)}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &llm.LLMError{Provider: g.Name(), Status: statusCode, Message: fmt.Sprintf("failed to unmarshal Gemini response: %v", err)}
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &llm.LLMError{Provider: g.Name(), Status: statusCode, Message: "no content generated"}
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

func (g *geminiImpl) reportAttempt(ctx context.Context, info pkghttp.AttemptInfo) {
	if info.Err != nil {
		g.l.Warnf(ctx, "gemini.Complete: attempt %d/%d failed: %v", info.Attempt, info.MaxAttempts, info.Err)
		return
	}
	g.l.Warnf(ctx, "gemini.Complete: attempt %d/%d failed: status %d", info.Attempt, info.MaxAttempts, info.StatusCode)
}

func errorMessage(body []byte, status int) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return http.StatusText(status)
}
