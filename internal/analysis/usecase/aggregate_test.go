package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/model"
)

func TestAggregate_EmptyCorpusAndEmptyAnalysis(t *testing.T) {
	report, err := aggregate(nil, model.AnalysisResult{SentimentScore: 50}, "nike")

	assert.ErrorIs(t, err, analysis.ErrEmptyCorpus)
	assert.Equal(t, model.SentimentDistribution{Positive: 50, Neutral: 30, Negative: 20}, report.SentimentDistribution)
	assert.Zero(t, report.TotalEngagement)
	assert.Zero(t, report.AverageEngagement)
	assert.Zero(t, report.BrandMentionRate)
	assert.LessOrEqual(t, len(report.Tags), 5)
}

func TestAggregate_Totals(t *testing.T) {
	posts := samplePosts("I love Nike", "quiet day", "nike run club", "coffee")
	posts[0].Engagement = model.Engagement{Likes: 1000, Comments: 100, Shares: 10}
	posts[1].Engagement = model.Engagement{Likes: 2000, Comments: 200, Shares: 0}
	posts[2].Engagement = model.Engagement{Likes: 3001, Comments: 1, Shares: 1}
	posts[3].Engagement = model.Engagement{Likes: 0, Comments: 0, Shares: 0}

	report, err := aggregate(posts, model.AnalysisResult{}, "NIKE")

	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalPosts)
	assert.Equal(t, int64(6313), report.TotalEngagement)
	assert.Equal(t, int64(1578), report.AverageEngagement)
	assert.Equal(t, 2, report.BrandMentions)
	assert.Equal(t, 50, report.BrandMentionRate)
}

func TestAggregate_MentionRateRounds(t *testing.T) {
	posts := samplePosts("nike", "nike", "other")

	report, err := aggregate(posts, model.AnalysisResult{}, "nike")

	require.NoError(t, err)
	assert.Equal(t, 67, report.BrandMentionRate)
}

func TestSentimentDistribution(t *testing.T) {
	entry := func(s model.Sentiment) model.ContentAnalysis {
		return model.ContentAnalysis{PostIndex: 1, Sentiment: s}
	}
	pos, neu, neg := model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative

	tests := []struct {
		name    string
		entries []model.ContentAnalysis
		want    model.SentimentDistribution
	}{
		{"empty", nil, model.SentimentDistribution{Positive: 50, Neutral: 30, Negative: 20}},
		{"thirds", []model.ContentAnalysis{entry(pos), entry(neu), entry(neg)}, model.SentimentDistribution{Positive: 33, Neutral: 34, Negative: 33}},
		{"all positive", []model.ContentAnalysis{entry(pos), entry(pos)}, model.SentimentDistribution{Positive: 100, Neutral: 0, Negative: 0}},
		{"halves", []model.ContentAnalysis{entry(pos), entry(neg)}, model.SentimentDistribution{Positive: 50, Neutral: 0, Negative: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentimentDistribution(tt.entries))
		})
	}
}

func TestSentimentDistribution_AlwaysSumsTo100(t *testing.T) {
	pos, neg := model.SentimentPositive, model.SentimentNegative
	for n := 1; n <= 40; n++ {
		for p := 0; p <= n; p++ {
			entries := make([]model.ContentAnalysis, 0, n)
			for i := 0; i < n; i++ {
				s := neg
				if i < p {
					s = pos
				}
				entries = append(entries, model.ContentAnalysis{Sentiment: s})
			}
			d := sentimentDistribution(entries)
			assert.Equal(t, 100, d.Positive+d.Neutral+d.Negative, "n=%d p=%d", n, p)
			assert.GreaterOrEqual(t, d.Neutral, 0)
		}
	}
}

func TestGenerateTags_Rules(t *testing.T) {
	tests := []struct {
		name        string
		result      model.AnalysisResult
		mentionRate int
		want        []string
	}{
		{
			name:        "excellent and aligned",
			result:      model.AnalysisResult{SentimentScore: 85, BrandAlignment: model.AlignmentHigh},
			mentionRate: 50,
			want:        []string{"Excellent Brand Advocate", "Brand Aligned"},
		},
		{
			name:        "positive impact with low mentions",
			result:      model.AnalysisResult{SentimentScore: 60, BrandAlignment: model.AlignmentPartial},
			mentionRate: 30,
			want:        []string{"Positive Brand Impact", "Low Brand Mentions"},
		},
		{
			name:        "needs attention and misaligned",
			result:      model.AnalysisResult{SentimentScore: 40, BrandAlignment: model.AlignmentNone, RiskFactors: []string{"x"}},
			mentionRate: 70,
			want:        []string{"Needs Attention", "Misaligned Content", "High Brand Visibility", "Risk Identified"},
		},
		{
			name:        "middle score adds nothing",
			result:      model.AnalysisResult{SentimentScore: 50, BrandAlignment: model.AlignmentPartial},
			mentionRate: 50,
			want:        []string{},
		},
		{
			name:        "keywords",
			result:      model.AnalysisResult{SentimentScore: 50, TopKeywords: []string{"Genuine", "followers"}},
			mentionRate: 50,
			want:        []string{"Authentic Voice", "High Engagement"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateTags(tt.result, tt.mentionRate))
		})
	}
}

func TestGenerateTags_NeverMoreThanFive(t *testing.T) {
	result := model.AnalysisResult{
		SentimentScore: 95,
		BrandAlignment: model.AlignmentHigh,
		RiskFactors:    []string{"a", "b"},
		TopKeywords:    []string{"authentic", "community", "real", "engagement"},
	}

	tags := generateTags(result, 90)

	assert.Len(t, tags, 5)
	assert.Equal(t, []string{
		"Excellent Brand Advocate", "Brand Aligned", "High Brand Visibility", "Risk Identified", "Authentic Voice",
	}, tags)
}
