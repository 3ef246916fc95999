package usecase

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/model"
)

func samplePosts(captions ...string) []model.Post {
	posts := make([]model.Post, 0, len(captions))
	for i, c := range captions {
		posts = append(posts, model.Post{
			ID:          string(rune('a' + i)),
			CaptionText: c,
			Platform:    model.PlatformInstagram,
			Engagement:  model.Engagement{Likes: 1000, Comments: 100, Shares: 10},
		})
	}
	return posts
}

func assertSchemaValid(t *testing.T, r model.AnalysisResult) {
	t.Helper()
	assert.True(t, r.OverallSentiment.IsValid())
	assert.True(t, r.BrandAlignment.IsValid())
	assert.GreaterOrEqual(t, r.SentimentScore, 0)
	assert.LessOrEqual(t, r.SentimentScore, 100)
	assert.LessOrEqual(t, len(r.TopKeywords), 5)
	assert.LessOrEqual(t, len(r.Recommendations), 5)
	assert.LessOrEqual(t, len(r.RiskFactors), 3)
	assert.LessOrEqual(t, len(r.Opportunities), 3)
	assert.LessOrEqual(t, len([]rune(r.AIQuote)), 150)
	assert.NotEmpty(t, r.AIQuote)
	assert.NotEmpty(t, r.EngagementInsights)
	for _, list := range [][]string{r.TopKeywords, r.Recommendations, r.RiskFactors, r.Opportunities} {
		for _, s := range list {
			assert.NotEmpty(t, strings.TrimSpace(s))
		}
	}
	for _, ca := range r.ContentAnalysis {
		assert.True(t, ca.Sentiment.IsValid())
		assert.GreaterOrEqual(t, ca.PostIndex, 1)
		assert.NotEmpty(t, ca.AIComment)
	}
}

func TestSynthesizeAnalysis_IsSchemaValid(t *testing.T) {
	posts := samplePosts("I love my Nike shoes", "quiet day", "NIKE run club", "coffee")

	for seed := int64(1); seed <= 50; seed++ {
		r := synthesizeAnalysis(rand.New(rand.NewSource(seed)), "nike", "techguru", posts)
		assertSchemaValid(t, r)
	}
}

func TestSynthesizeAnalysis_OneEntryPerPost(t *testing.T) {
	posts := samplePosts("I love my Nike shoes", "quiet day", "NIKE run club")

	r := synthesizeAnalysis(rand.New(rand.NewSource(1)), "nike", "techguru", posts)

	require.Len(t, r.ContentAnalysis, 3)
	for i, ca := range r.ContentAnalysis {
		assert.Equal(t, i+1, ca.PostIndex)
	}
	assert.True(t, r.ContentAnalysis[0].BrandMention)
	assert.False(t, r.ContentAnalysis[1].BrandMention)
	assert.True(t, r.ContentAnalysis[2].BrandMention)
}

func TestSynthesizeAnalysis_ScoreAroundSentimentBase(t *testing.T) {
	seen := map[model.Sentiment]bool{}
	for seed := int64(1); seed <= 200; seed++ {
		r := synthesizeAnalysis(rand.New(rand.NewSource(seed)), "nike", "techguru", nil)
		base := fallbackBaseScores[r.OverallSentiment]
		assert.InDelta(t, base, r.SentimentScore, 10)
		assert.Equal(t, alignmentForScore(r.SentimentScore), r.BrandAlignment)
		seen[r.OverallSentiment] = true
	}
	assert.Len(t, seen, 3)
}

func TestSynthesizeAnalysis_InterpolatesNames(t *testing.T) {
	r := synthesizeAnalysis(rand.New(rand.NewSource(2)), "nike", "techguru", nil)

	assert.Contains(t, r.AIQuote, "techguru")
	assert.Contains(t, r.AIQuote, "nike")
	assert.Contains(t, r.EngagementInsights, strings.ToLower(string(r.OverallSentiment)))
	assert.Contains(t, strings.Join(r.Recommendations, " "), "nike")
}

func TestSynthesizeAnalysis_SameSeedSameResult(t *testing.T) {
	posts := samplePosts("Nike", "other")

	a := synthesizeAnalysis(rand.New(rand.NewSource(99)), "nike", "techguru", posts)
	b := synthesizeAnalysis(rand.New(rand.NewSource(99)), "nike", "techguru", posts)

	assert.Equal(t, a, b)
}

func TestAlignmentForScore(t *testing.T) {
	assert.Equal(t, model.AlignmentHigh, alignmentForScore(85))
	assert.Equal(t, model.AlignmentHigh, alignmentForScore(70))
	assert.Equal(t, model.AlignmentAligned, alignmentForScore(69))
	assert.Equal(t, model.AlignmentAligned, alignmentForScore(55))
	assert.Equal(t, model.AlignmentPartial, alignmentForScore(54))
	assert.Equal(t, model.AlignmentPartial, alignmentForScore(40))
	assert.Equal(t, model.AlignmentNone, alignmentForScore(39))
}
