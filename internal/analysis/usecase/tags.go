package usecase

import (
	"strings"

	"brandpulse-srv/internal/model"
)

const maxTags = 5

const (
	tagExcellentAdvocate = "Excellent Brand Advocate"
	tagPositiveImpact    = "Positive Brand Impact"
	tagNeedsAttention    = "Needs Attention"
	tagBrandAligned      = "Brand Aligned"
	tagMisaligned        = "Misaligned Content"
	tagHighVisibility    = "High Brand Visibility"
	tagLowMentions       = "Low Brand Mentions"
	tagRiskIdentified    = "Risk Identified"
	tagAuthenticVoice    = "Authentic Voice"
	tagHighEngagement    = "High Engagement"
)

var (
	authenticKeywords  = []string{"authentic", "genuine", "real"}
	engagementKeywords = []string{"engagement", "community", "followers"}
)

// generateTags applies the tag rules in order, at most one tag per rule, and caps the result.
func generateTags(result model.AnalysisResult, mentionRate int) []string {
	tags := make([]string, 0, maxTags)

	switch {
	case result.SentimentScore >= 80:
		tags = append(tags, tagExcellentAdvocate)
	case result.SentimentScore >= 60:
		tags = append(tags, tagPositiveImpact)
	case result.SentimentScore <= 40:
		tags = append(tags, tagNeedsAttention)
	}

	switch result.BrandAlignment {
	case model.AlignmentHigh, model.AlignmentAligned:
		tags = append(tags, tagBrandAligned)
	case model.AlignmentNone:
		tags = append(tags, tagMisaligned)
	}

	switch {
	case mentionRate >= 70:
		tags = append(tags, tagHighVisibility)
	case mentionRate <= 30:
		tags = append(tags, tagLowMentions)
	}

	if len(result.RiskFactors) > 0 {
		tags = append(tags, tagRiskIdentified)
	}
	if hasKeyword(result.TopKeywords, authenticKeywords) {
		tags = append(tags, tagAuthenticVoice)
	}
	if hasKeyword(result.TopKeywords, engagementKeywords) {
		tags = append(tags, tagHighEngagement)
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

func hasKeyword(keywords, wanted []string) bool {
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		for _, w := range wanted {
			if k == w {
				return true
			}
		}
	}
	return false
}
