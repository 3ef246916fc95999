package kafka

import "time"

// AnalysisCompletedMessage - Kafka message for brandpulse.analysis.completed
type AnalysisCompletedMessage struct {
	RequestID        string    `json:"request_id"`
	Influencer       string    `json:"influencer"`
	Brand            string    `json:"brand"`
	Platform         string    `json:"platform"`
	Source           string    `json:"source"`
	OverallSentiment string    `json:"overall_sentiment"`
	SentimentScore   int       `json:"sentiment_score"`
	BrandAlignment   string    `json:"brand_alignment"`
	TotalPosts       int       `json:"total_posts"`
	Tags             []string  `json:"tags"`
	CompletedAt      time.Time `json:"completed_at"`
}
