package usecase

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/log"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func defaultCorpusOptions() corpusOptions {
	return corpusOptions{mentionProbability: 0.7, variance: 0.3}
}

func TestGeneratePosts_OrderAndTimestamps(t *testing.T) {
	posts := generatePosts(rand.New(rand.NewSource(1)), fixedNow, corpusInput{
		influencer: "techguru", brand: "nike", platform: model.PlatformInstagram, count: 4,
	}, defaultCorpusOptions())

	require.Len(t, posts, 4)
	for i, p := range posts {
		assert.Equal(t, fixedNow.Add(-time.Duration(i)*6*time.Hour), p.PublishedAt)
		assert.Equal(t, "techguru", p.Influencer)
		assert.Equal(t, model.PlatformInstagram, p.Platform)
		assert.NotEmpty(t, p.ID)
		if i > 0 {
			assert.True(t, p.PublishedAt.Before(posts[i-1].PublishedAt))
		}
	}
}

func TestGeneratePosts_SameSeedSameCorpus(t *testing.T) {
	in := corpusInput{influencer: "techguru", brand: "nike", platform: model.PlatformTikTok, count: 5}

	a := generatePosts(rand.New(rand.NewSource(42)), fixedNow, in, defaultCorpusOptions())
	b := generatePosts(rand.New(rand.NewSource(42)), fixedNow, in, defaultCorpusOptions())
	c := generatePosts(rand.New(rand.NewSource(43)), fixedNow, in, defaultCorpusOptions())

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGeneratePosts_UniqueIDs(t *testing.T) {
	posts := generatePosts(rand.New(rand.NewSource(7)), fixedNow, corpusInput{
		influencer: "techguru", brand: "nike", platform: model.PlatformYouTube, count: 50,
	}, defaultCorpusOptions())

	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestGeneratePosts_EngagementFloorsAndViews(t *testing.T) {
	for _, platform := range model.Platforms {
		t.Run(string(platform), func(t *testing.T) {
			// Variance close to 1 pushes values towards zero so the floors are exercised.
			posts := generatePosts(rand.New(rand.NewSource(3)), fixedNow, corpusInput{
				influencer: "techguru", brand: "nike", platform: platform, count: 50,
			}, corpusOptions{mentionProbability: 0.7, variance: 0.99})

			for _, p := range posts {
				assert.GreaterOrEqual(t, p.Engagement.Likes, int64(100))
				assert.GreaterOrEqual(t, p.Engagement.Comments, int64(10))
				assert.GreaterOrEqual(t, p.Engagement.Shares, int64(5))
				if platform.ReportsViews() {
					require.NotNil(t, p.Engagement.Views)
				} else {
					assert.Nil(t, p.Engagement.Views)
				}
			}
		})
	}
}

func TestGeneratePosts_EngagementWithinVariance(t *testing.T) {
	posts := generatePosts(rand.New(rand.NewSource(9)), fixedNow, corpusInput{
		influencer: "techguru", brand: "nike", platform: model.PlatformYouTube, count: 30,
	}, defaultCorpusOptions())

	for _, p := range posts {
		assert.InDelta(t, 15000, p.Engagement.Likes, 15000*0.3+1)
		assert.InDelta(t, 800, p.Engagement.Comments, 800*0.3+1)
		assert.InDelta(t, 400, p.Engagement.Shares, 400*0.3+1)
		assert.InDelta(t, 250000, *p.Engagement.Views, 250000*0.3+1)
	}
}

func TestGeneratePosts_MentionProbability(t *testing.T) {
	always := generatePosts(rand.New(rand.NewSource(5)), fixedNow, corpusInput{
		influencer: "techguru", brand: "Nike", platform: model.PlatformTwitter, count: 20,
	}, corpusOptions{mentionProbability: 1, variance: 0.3})
	for _, p := range always {
		assert.True(t, containsFold(p.CaptionText, "nike"), p.CaptionText)
	}

	noBrand := generatePosts(rand.New(rand.NewSource(5)), fixedNow, corpusInput{
		influencer: "techguru", platform: model.PlatformTwitter, count: 20,
	}, corpusOptions{mentionProbability: 1, variance: 0.3})
	for _, p := range noBrand {
		assert.NotContains(t, p.CaptionText, "{brand}")
		assert.NotContains(t, p.CaptionText, "{tag}")
	}
}

func TestGeneratePosts_HashtagsComeFromCaption(t *testing.T) {
	posts := generatePosts(rand.New(rand.NewSource(11)), fixedNow, corpusInput{
		influencer: "techguru", brand: "nike", platform: model.PlatformInstagram, count: 10,
	}, defaultCorpusOptions())

	for _, p := range posts {
		assert.Equal(t, extractHashtags(p.CaptionText), p.Hashtags)
		assert.Equal(t, extractMentions(p.CaptionText), p.Mentions)
		for _, h := range p.Hashtags {
			assert.True(t, strings.HasPrefix(h, "#"))
		}
	}
}

func TestExtractHashtagsAndMentions(t *testing.T) {
	caption := "Loving #nike and #run with @coach and @nike, again #nike"

	assert.Equal(t, []string{"#nike", "#run", "#nike"}, extractHashtags(caption))
	assert.Equal(t, []string{"@coach", "@nike"}, extractMentions(caption))
	assert.Equal(t, []string{}, extractHashtags("no tags here"))
}

func TestBrandCaptionsFor_UnknownPlatformUsesInstagram(t *testing.T) {
	assert.Equal(t, brandCaptions[model.PlatformInstagram], brandCaptionsFor(model.Platform("myspace")))
}

func TestBrandToken(t *testing.T) {
	assert.Equal(t, "cocacola", brandToken("Coca Cola"))
	assert.Equal(t, "hm", brandToken("H&M"))
	assert.Equal(t, "brand", brandToken("!!!"))
}

func TestCorpusOptions_ExplicitZeroIsHonored(t *testing.T) {
	zero := 0.0
	uc := newUseCase(log.NewNop(), nil, nil, nil, Config{
		Seed:                    1,
		BrandMentionProbability: &zero,
		EngagementVariance:      &zero,
	})

	opts := uc.corpusOptions()
	assert.Zero(t, opts.mentionProbability)
	assert.Zero(t, opts.variance)

	posts := generatePosts(rand.New(rand.NewSource(3)), fixedNow, corpusInput{
		influencer: "techguru", brand: "nike", platform: model.PlatformInstagram, count: 5,
	}, opts)
	for _, p := range posts {
		assert.Equal(t, int64(5000), p.Engagement.Likes)
		assert.Equal(t, int64(200), p.Engagement.Comments)
		assert.Equal(t, int64(100), p.Engagement.Shares)
	}
}

func TestCorpusOptions_DefaultsWhenUnsetOrOutOfRange(t *testing.T) {
	tooHigh := 1.5
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unset", Config{}},
		{"out of range", Config{BrandMentionProbability: &tooHigh, EngagementVariance: &tooHigh}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newUseCase(log.NewNop(), nil, nil, nil, tt.cfg).corpusOptions()
			assert.Equal(t, defaultMentionProbability, opts.mentionProbability)
			assert.Equal(t, defaultVariance, opts.variance)
		})
	}
}
