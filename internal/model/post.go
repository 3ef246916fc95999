package model

import "time"

// Platform is the social network a post was published on.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformInstagram, PlatformYouTube, PlatformTikTok, PlatformTwitter}

// IsValid reports whether p is a supported platform.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformTikTok, PlatformTwitter:
		return true
	}
	return false
}

// ReportsViews reports whether the platform exposes a view counter.
func (p Platform) ReportsViews() bool {
	return p == PlatformYouTube || p == PlatformTikTok
}

// Post - One synthesized social-media post
type Post struct {
	ID          string     `json:"id"`
	Influencer  string     `json:"influencer"`
	Platform    Platform   `json:"platform"`
	CaptionText string     `json:"captionText"`
	PublishedAt time.Time  `json:"publishedAt"`
	Engagement  Engagement `json:"engagement"`
	Hashtags    []string   `json:"hashtags"`
	Mentions    []string   `json:"mentions"`
}

// Engagement - Interaction counters of a post. Views is nil for platforms without a view counter.
type Engagement struct {
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
	Views    *int64 `json:"views,omitempty"`
}

// Total returns likes + comments + shares.
func (e Engagement) Total() int64 {
	return e.Likes + e.Comments + e.Shares
}
