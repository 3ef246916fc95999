package model

// Sentiment is the overall tone of a post or a corpus.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Sentiments lists the allowed sentiment values.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// IsValid reports whether s is one of the allowed values.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Alignment is the judgement of how well content fits a brand.
type Alignment string

const (
	AlignmentHigh    Alignment = "Highly Aligned"
	AlignmentAligned Alignment = "Aligned"
	AlignmentPartial Alignment = "Partially Aligned"
	AlignmentNone    Alignment = "Not Aligned"
)

// Alignments lists the allowed alignment values.
var Alignments = []Alignment{AlignmentHigh, AlignmentAligned, AlignmentPartial, AlignmentNone}

// IsValid reports whether a is one of the allowed values.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignmentHigh, AlignmentAligned, AlignmentPartial, AlignmentNone:
		return true
	}
	return false
}

// AnalysisResult - Normalized influencer/brand analysis.
// Every field is populated and within range once it leaves the normalizer or the fallback.
type AnalysisResult struct {
	OverallSentiment   Sentiment         `json:"overallSentiment"`
	SentimentScore     int               `json:"sentimentScore"`
	BrandAlignment     Alignment         `json:"brandAlignment"`
	TopKeywords        []string          `json:"topKeywords"`
	AIQuote            string            `json:"aiQuote"`
	ContentAnalysis    []ContentAnalysis `json:"contentAnalysis"`
	Recommendations    []string          `json:"recommendations"`
	RiskFactors        []string          `json:"riskFactors"`
	Opportunities      []string          `json:"opportunities"`
	EngagementInsights string            `json:"engagementInsights"`
}

// ContentAnalysis - Per-post verdict. PostIndex is 1-based and may not match any post.
type ContentAnalysis struct {
	PostIndex    int       `json:"postIndex"`
	Sentiment    Sentiment `json:"sentiment"`
	AIComment    string    `json:"aiComment"`
	BrandMention bool      `json:"brandMention"`
}
