package usecase

import (
	"math"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/model"
)

var defaultDistribution = model.SentimentDistribution{Positive: 50, Neutral: 30, Negative: 20}

// aggregate derives the report for posts and their analysis.
// For an empty corpus it returns analysis.ErrEmptyCorpus together with a report whose engagement
// figures are zero; distribution and tags are still filled in.
func aggregate(posts []model.Post, result model.AnalysisResult, brand string) (model.AggregatedReport, error) {
	report := model.AggregatedReport{
		TotalPosts:            len(posts),
		SentimentDistribution: sentimentDistribution(result.ContentAnalysis),
	}

	if len(posts) == 0 {
		report.Tags = generateTags(result, 0)
		return report, analysis.ErrEmptyCorpus
	}

	for _, p := range posts {
		report.TotalEngagement += p.Engagement.Total()
		if containsFold(p.CaptionText, brand) {
			report.BrandMentions++
		}
	}
	n := float64(len(posts))
	report.AverageEngagement = int64(math.Round(float64(report.TotalEngagement) / n))
	report.BrandMentionRate = int(math.Round(100 * float64(report.BrandMentions) / n))
	report.Tags = generateTags(result, report.BrandMentionRate)

	return report, nil
}

// sentimentDistribution turns per-post sentiments into percentages. Neutral takes the rounding
// remainder so the three always sum to 100.
func sentimentDistribution(entries []model.ContentAnalysis) model.SentimentDistribution {
	if len(entries) == 0 {
		return defaultDistribution
	}

	var positive, negative int
	for _, e := range entries {
		switch e.Sentiment {
		case model.SentimentPositive:
			positive++
		case model.SentimentNegative:
			negative++
		}
	}

	n := float64(len(entries))
	d := model.SentimentDistribution{
		Positive: int(math.Round(100 * float64(positive) / n)),
		Negative: int(math.Round(100 * float64(negative) / n)),
	}
	d.Neutral = 100 - d.Positive - d.Negative
	if d.Neutral < 0 {
		// Both halves rounded up; take the extra point back from negative.
		d.Negative += d.Neutral
		d.Neutral = 0
	}
	return d
}
