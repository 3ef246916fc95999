package gemini

import (
	pkghttp "brandpulse-srv/pkg/http"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

const (
	BaseURL                = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel           = "gemini-1.5-flash"
	DefaultMaxOutputTokens = 2000
)

// geminiImpl implements llm.IProvider using the Google Gemini API.
type geminiImpl struct {
	l          log.Logger
	config     llm.Config
	httpClient pkghttp.IClient
}

// Request defines the request body for Generate Content API
type Request struct {
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	Contents          []Content        `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// GenerationConfig holds sampling parameters.
type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content
type Part struct {
	Text string `json:"text,omitempty"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
