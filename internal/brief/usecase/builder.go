package usecase

import (
	"fmt"
	"time"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/model"
)

func buildBrief(t model.Tracker, o analysis.AnalyzeOutput, id string, createdAt time.Time) model.Brief {
	a := o.Analysis
	tags := make([]string, len(o.Report.Tags))
	copy(tags, o.Report.Tags)

	return model.Brief{
		ID:               id,
		TrackerID:        t.ID,
		Influencer:       t.Influencer,
		Brand:            t.Brand,
		Platform:         t.Platform,
		Headline:         fmt.Sprintf("%s x %s: %s, %s (%d/100)", t.Influencer, t.Brand, a.OverallSentiment, a.BrandAlignment, a.SentimentScore),
		Summary:          buildSummary(t, o),
		OverallSentiment: a.OverallSentiment,
		SentimentScore:   a.SentimentScore,
		BrandAlignment:   a.BrandAlignment,
		Tags:             tags,
		Source:           o.Metadata.Source,
		CreatedAt:        createdAt,
	}
}

func buildSummary(t model.Tracker, o analysis.AnalyzeOutput) string {
	r := o.Report
	s := fmt.Sprintf("%s %d of %d recent %s posts mention %s (%d%%), averaging %d interactions.",
		o.Analysis.AIQuote, r.BrandMentions, r.TotalPosts, t.Platform, t.Brand, r.BrandMentionRate, r.AverageEngagement)
	if len(o.Analysis.Recommendations) > 0 {
		s += " Next step: " + o.Analysis.Recommendations[0]
	}
	return s
}
