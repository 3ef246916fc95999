package model

// AggregatedReport - Figures derived from a post corpus and its analysis
type AggregatedReport struct {
	TotalPosts            int                   `json:"totalPosts"`
	TotalEngagement       int64                 `json:"totalEngagement"`
	AverageEngagement     int64                 `json:"averageEngagement"`
	BrandMentions         int                   `json:"brandMentions"`
	BrandMentionRate      int                   `json:"brandMentionRate"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	Tags                  []string              `json:"tags"`
}

// SentimentDistribution - Percentages summing to 100
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}
