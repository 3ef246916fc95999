package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"brandpulse-srv/internal/model"
)

func TestBuildPrompt_ContainsCaptionsAndSchema(t *testing.T) {
	views := int64(250000)
	posts := []model.Post{
		{
			CaptionText: "Morning run with my new Nike shoes #nike #run",
			Platform:    model.PlatformInstagram,
			PublishedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Engagement:  model.Engagement{Likes: 5100, Comments: 210, Shares: 95},
			Hashtags:    []string{"#nike", "#run"},
		},
		{
			CaptionText: "Just a quiet Sunday",
			Platform:    model.PlatformYouTube,
			PublishedAt: time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC),
			Engagement:  model.Engagement{Likes: 14000, Comments: 700, Shares: 380, Views: &views},
		},
	}

	prompt := buildPrompt(posts, "nike", "techguru")

	assert.Contains(t, prompt, `"Morning run with my new Nike shoes #nike #run"`)
	assert.Contains(t, prompt, `"Just a quiet Sunday"`)
	assert.Contains(t, prompt, `"overallSentiment"`)
	assert.Contains(t, prompt, "Post 1:")
	assert.Contains(t, prompt, "Post 2:")
	assert.Contains(t, prompt, "5100 likes, 210 comments, 95 shares")
	assert.Contains(t, prompt, "250000 views")
	assert.Contains(t, prompt, "Hashtags: #nike, #run")
	assert.Contains(t, prompt, "Hashtags: None")
	assert.Contains(t, prompt, "2024-06-01T12:00:00Z")
	assert.Equal(t, 1, strings.Count(prompt, "views"))
}

func TestBuildPrompt_IsDeterministic(t *testing.T) {
	posts := []model.Post{{CaptionText: "hello", Platform: model.PlatformTwitter, PublishedAt: fixedNow}}

	assert.Equal(t, buildPrompt(posts, "nike", "techguru"), buildPrompt(posts, "nike", "techguru"))
}

func TestBuildPrompt_ListsAllowedValues(t *testing.T) {
	prompt := buildPrompt(nil, "nike", "techguru")

	for _, s := range model.Sentiments {
		assert.Contains(t, prompt, `"`+string(s)+`"`)
	}
	for _, a := range model.Alignments {
		assert.Contains(t, prompt, `"`+string(a)+`"`)
	}
}
