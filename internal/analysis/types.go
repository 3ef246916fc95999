package analysis

import (
	"time"

	"brandpulse-srv/internal/model"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"

	// MaxNameLength bounds influencer and brand identifiers.
	MaxNameLength = 100
)

type AnalyzeInput struct {
	Influencer string
	Brand      string
	Platform   model.Platform
	// Limit is the corpus size. Zero selects the configured default.
	Limit int
}

type AnalyzeOutput struct {
	Analysis model.AnalysisResult   `json:"analysis"`
	Report   model.AggregatedReport `json:"report"`
	Posts    []model.Post           `json:"posts"`
	Metadata Metadata               `json:"metadata"`
}

// Metadata describes how an analysis was produced.
type Metadata struct {
	RequestID  string         `json:"requestId"`
	Influencer string         `json:"influencer"`
	Brand      string         `json:"brand"`
	Platform   model.Platform `json:"platform"`
	Source     string         `json:"source"`
	Provider   string         `json:"provider,omitempty"`
	Model      string         `json:"model,omitempty"`
	DurationMs int64          `json:"durationMs"`
	AnalyzedAt time.Time      `json:"analyzedAt"`
	Cached     bool           `json:"cached"`
}

type PostsInput struct {
	Influencer string
	// Brand is optional; without it every caption is brand-agnostic.
	Brand    string
	Platform model.Platform
	Limit    int
}

type PostsOutput struct {
	Posts []model.Post `json:"posts"`
}

// AnalysisCompleted is published after every successful Analyze call.
type AnalysisCompleted struct {
	RequestID        string          `json:"request_id"`
	Influencer       string          `json:"influencer"`
	Brand            string          `json:"brand"`
	Platform         model.Platform  `json:"platform"`
	Source           string          `json:"source"`
	OverallSentiment model.Sentiment `json:"overall_sentiment"`
	SentimentScore   int             `json:"sentiment_score"`
	BrandAlignment   model.Alignment `json:"brand_alignment"`
	TotalPosts       int             `json:"total_posts"`
	Tags             []string        `json:"tags"`
	CompletedAt      time.Time       `json:"completed_at"`
}
