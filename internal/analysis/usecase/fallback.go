package usecase

import (
	"fmt"
	"math/rand"
	"strings"

	"brandpulse-srv/internal/model"
)

const (
	fallbackJitter = 10
	// Probability that a post echoes the overall sentiment instead of drawing its own.
	fallbackPostAgreement = 0.6
)

var fallbackBaseScores = map[model.Sentiment]int{
	model.SentimentPositive: 75,
	model.SentimentNeutral:  55,
	model.SentimentNegative: 35,
}

var fallbackKeywordSets = map[model.Sentiment][]string{
	model.SentimentPositive: {"authentic", "community", "lifestyle", "quality", "engagement"},
	model.SentimentNeutral:  {"lifestyle", "content", "product", "review", "followers"},
	model.SentimentNegative: {"sponsored", "pricing", "inconsistent", "criticism", "content"},
}

var fallbackPostComments = map[model.Sentiment][]string{
	model.SentimentPositive: {
		"Warm, enthusiastic tone that reads as a genuine endorsement.",
		"Strong audience response and a natural product placement.",
		"Upbeat storytelling that keeps the focus on the experience.",
	},
	model.SentimentNeutral: {
		"Informational post with a balanced, matter-of-fact tone.",
		"Moderate engagement; the message is clear but low on emotion.",
		"Lifestyle content with little direct opinion.",
	},
	model.SentimentNegative: {
		"Critical undertone that could reflect poorly on a partner brand.",
		"Audience reaction skews skeptical in the comments.",
		"The post feels forced and may read as inauthentic.",
	},
}

// synthesizeAnalysis produces a schema-valid analysis without calling any external service.
// It always returns one contentAnalysis entry per post.
func synthesizeAnalysis(rng *rand.Rand, brand, influencer string, posts []model.Post) model.AnalysisResult {
	sentiment := model.Sentiments[rng.Intn(len(model.Sentiments))]
	score := clamp(fallbackBaseScores[sentiment]+rng.Intn(2*fallbackJitter+1)-fallbackJitter, 0, 100)
	word := strings.ToLower(string(sentiment))

	entries := make([]model.ContentAnalysis, 0, len(posts))
	for i, p := range posts {
		postSentiment := sentiment
		if rng.Float64() >= fallbackPostAgreement {
			postSentiment = model.Sentiments[rng.Intn(len(model.Sentiments))]
		}
		comments := fallbackPostComments[postSentiment]
		entries = append(entries, model.ContentAnalysis{
			PostIndex:    i + 1,
			Sentiment:    postSentiment,
			AIComment:    comments[rng.Intn(len(comments))],
			BrandMention: containsFold(p.CaptionText, brand),
		})
	}

	return model.AnalysisResult{
		OverallSentiment:   sentiment,
		SentimentScore:     score,
		BrandAlignment:     alignmentForScore(score),
		TopKeywords:        append([]string(nil), fallbackKeywordSets[sentiment]...),
		AIQuote:            truncateRunes(fmt.Sprintf("%s brings a %s voice that could carry %s to an engaged audience.", influencer, word, brand), maxQuoteLength),
		ContentAnalysis:    entries,
		Recommendations:    fallbackRecommendationsFor(sentiment, brand, influencer),
		RiskFactors:        fallbackRisksFor(sentiment, brand),
		Opportunities:      fallbackOpportunitiesFor(brand, influencer),
		EngagementInsights: fmt.Sprintf("%s's recent posts show %s audience sentiment. Engagement is driven mostly by likes, with comment activity suggesting an audience that responds to %s-related content.", influencer, word, brand),
	}
}

func alignmentForScore(score int) model.Alignment {
	switch {
	case score >= 70:
		return model.AlignmentHigh
	case score >= 55:
		return model.AlignmentAligned
	case score >= 40:
		return model.AlignmentPartial
	default:
		return model.AlignmentNone
	}
}

func fallbackRecommendationsFor(sentiment model.Sentiment, brand, influencer string) []string {
	recs := []string{
		fmt.Sprintf("Brief %s on %s's key messages before the first post", influencer, brand),
		fmt.Sprintf("Track %s mentions and sentiment weekly during the campaign", brand),
	}
	switch sentiment {
	case model.SentimentPositive:
		recs = append(recs,
			fmt.Sprintf("Consider a long-term ambassador agreement with %s", influencer),
			"Give the creator room for their own storytelling style",
		)
	case model.SentimentNeutral:
		recs = append(recs, "Start with a single sponsored post and measure the lift")
	default:
		recs = append(recs,
			"Review the creator's recent controversies before committing",
			"Limit the first engagement to a low-visibility test",
		)
	}
	return recs
}

func fallbackRisksFor(sentiment model.Sentiment, brand string) []string {
	switch sentiment {
	case model.SentimentPositive:
		return []string{"Sponsored content fatigue if partnerships are too frequent"}
	case model.SentimentNeutral:
		return []string{
			fmt.Sprintf("Low emotional connection may dilute %s's message", brand),
			"Engagement may not convert into purchase intent",
		}
	default:
		return []string{
			fmt.Sprintf("Negative audience sentiment could transfer to %s", brand),
			"Perceived inauthenticity of sponsored posts",
			"Potential reputational risk from critical content",
		}
	}
}

func fallbackOpportunitiesFor(brand, influencer string) []string {
	return []string{
		fmt.Sprintf("Co-create a %s product showcase with %s", brand, influencer),
		"Leverage the creator's community for user-generated content",
		"Cross-promote across the creator's secondary platforms",
	}
}
