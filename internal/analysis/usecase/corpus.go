package usecase

import (
	"math"
	"math/rand"
	"regexp"
	"time"

	"brandpulse-srv/internal/model"
)

const (
	postInterval = 6 * time.Hour

	minLikes    = 100
	minComments = 10
	minShares   = 5
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

type engagementBase struct {
	likes, comments, shares int64
	views                   int64
}

var platformBases = map[model.Platform]engagementBase{
	model.PlatformInstagram: {likes: 5000, comments: 200, shares: 100},
	model.PlatformYouTube:   {likes: 15000, comments: 800, shares: 400, views: 250000},
	model.PlatformTikTok:    {likes: 25000, comments: 600, shares: 1500, views: 180000},
	model.PlatformTwitter:   {likes: 2000, comments: 150, shares: 300},
}

type corpusOptions struct {
	mentionProbability float64
	variance           float64
}

type corpusInput struct {
	influencer string
	brand      string
	platform   model.Platform
	count      int
}

// generatePosts builds count posts, newest first, each published postInterval before the previous one.
func generatePosts(rng *rand.Rand, now time.Time, in corpusInput, opts corpusOptions) []model.Post {
	posts := make([]model.Post, 0, in.count)
	for i := 0; i < in.count; i++ {
		id := newPostID(rng)
		caption := pickCaption(rng, in, opts.mentionProbability)
		posts = append(posts, model.Post{
			ID:          id,
			Influencer:  in.influencer,
			Platform:    in.platform,
			CaptionText: caption,
			PublishedAt: now.Add(-time.Duration(i) * postInterval),
			Engagement:  synthesizeEngagement(rng, in.platform, opts.variance),
			Hashtags:    extractHashtags(caption),
			Mentions:    extractMentions(caption),
		})
	}
	return posts
}

func pickCaption(rng *rand.Rand, in corpusInput, mentionProbability float64) string {
	if in.brand != "" && rng.Float64() < mentionProbability {
		set := brandCaptionsFor(in.platform)
		return renderCaption(set[rng.Intn(len(set))], in.brand, in.influencer)
	}
	return renderCaption(genericCaptions[rng.Intn(len(genericCaptions))], in.brand, in.influencer)
}

func synthesizeEngagement(rng *rand.Rand, platform model.Platform, variance float64) model.Engagement {
	base, ok := platformBases[platform]
	if !ok {
		base = platformBases[model.PlatformInstagram]
	}

	e := model.Engagement{
		Likes:    max(perturb(rng, base.likes, variance), minLikes),
		Comments: max(perturb(rng, base.comments, variance), minComments),
		Shares:   max(perturb(rng, base.shares, variance), minShares),
	}
	if platform.ReportsViews() {
		views := max(perturb(rng, base.views, variance), 0)
		e.Views = &views
	}
	return e
}

// perturb scales base by a uniform factor in [1-variance, 1+variance].
func perturb(rng *rand.Rand, base int64, variance float64) int64 {
	factor := 1 + variance*(2*rng.Float64()-1)
	return int64(math.Round(float64(base) * factor))
}

func extractHashtags(caption string) []string {
	return nonNil(hashtagPattern.FindAllString(caption, -1))
}

func extractMentions(caption string) []string {
	return nonNil(mentionPattern.FindAllString(caption, -1))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
