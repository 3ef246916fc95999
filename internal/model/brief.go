package model

import "time"

// Brief - Periodic summary produced for a tracker
type Brief struct {
	ID               string    `json:"id"`
	TrackerID        string    `json:"tracker_id"`
	Influencer       string    `json:"influencer"`
	Brand            string    `json:"brand"`
	Platform         Platform  `json:"platform"`
	Headline         string    `json:"headline"`
	Summary          string    `json:"summary"`
	OverallSentiment Sentiment `json:"overall_sentiment"`
	SentimentScore   int       `json:"sentiment_score"`
	BrandAlignment   Alignment `json:"brand_alignment"`
	Tags             []string  `json:"tags"`
	Source           string    `json:"source"`
	CreatedAt        time.Time `json:"created_at"`
}
