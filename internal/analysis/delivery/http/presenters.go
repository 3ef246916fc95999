package http

import (
	"time"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/model"
)

type analyzeReq struct {
	Influencer string `json:"influencer" binding:"required,max=100"`
	Brand      string `json:"brand" binding:"required,max=100"`
	Platform   string `json:"platform,omitempty" binding:"omitempty,oneof=instagram youtube tiktok twitter"`
	Limit      *int   `json:"limit,omitempty" binding:"omitempty,min=1,max=50"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	input := analysis.AnalyzeInput{
		Influencer: r.Influencer,
		Brand:      r.Brand,
		Platform:   model.Platform(r.Platform),
	}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

type listPostsReq struct {
	Influencer string `form:"influencer" binding:"required,max=100"`
	Brand      string `form:"brand" binding:"max=100"`
	Platform   string `form:"platform" binding:"omitempty,oneof=instagram youtube tiktok twitter"`
	Limit      *int   `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (r listPostsReq) toInput() analysis.PostsInput {
	input := analysis.PostsInput{
		Influencer: r.Influencer,
		Brand:      r.Brand,
		Platform:   model.Platform(r.Platform),
	}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

type analyzeResp struct {
	SentimentScore     int                   `json:"sentimentScore"`
	OverallSentiment   string                `json:"overallSentiment"`
	BrandAlignment     string                `json:"brandAlignment"`
	AIQuote            string                `json:"aiQuote"`
	TopKeywords        []string              `json:"topKeywords"`
	Recommendations    []string              `json:"recommendations"`
	RiskFactors        []string              `json:"riskFactors"`
	Opportunities      []string              `json:"opportunities"`
	EngagementInsights string                `json:"engagementInsights"`
	ContentAnalysis    []contentAnalysisResp `json:"contentAnalysis"`
	Summary            summaryResp           `json:"summary"`
	Tags               []string              `json:"tags"`
	Posts              []postResp            `json:"posts,omitempty"`
}

type contentAnalysisResp struct {
	PostIndex    int    `json:"postIndex"`
	Sentiment    string `json:"sentiment"`
	AIComment    string `json:"aiComment"`
	BrandMention bool   `json:"brandMention"`
}

type summaryResp struct {
	TotalPosts            int                       `json:"totalPosts"`
	TotalEngagement       int64                     `json:"totalEngagement"`
	AverageEngagement     int64                     `json:"averageEngagement"`
	BrandMentions         int                       `json:"brandMentions"`
	BrandMentionRate      int                       `json:"brandMentionRate"`
	SentimentDistribution sentimentDistributionResp `json:"sentimentDistribution"`
}

type sentimentDistributionResp struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type metadataResp struct {
	RequestID  string `json:"requestId"`
	Influencer string `json:"influencer"`
	Brand      string `json:"brand"`
	Platform   string `json:"platform"`
	Source     string `json:"source"`
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	DurationMs int64  `json:"durationMs"`
	AnalyzedAt string `json:"analyzedAt"`
	Cached     bool   `json:"cached"`
}

type postResp struct {
	ID          string         `json:"id"`
	Influencer  string         `json:"influencer"`
	Platform    string         `json:"platform"`
	CaptionText string         `json:"captionText"`
	PublishedAt string         `json:"publishedAt"`
	Engagement  engagementResp `json:"engagement"`
	Hashtags    []string       `json:"hashtags"`
	Mentions    []string       `json:"mentions"`
}

type engagementResp struct {
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
	Views    *int64 `json:"views,omitempty"`
}

type listPostsResp struct {
	Posts []postResp `json:"posts"`
	Total int        `json:"total"`
}

func (h *handler) newAnalyzeResp(o analysis.AnalyzeOutput, includePosts bool) analyzeResp {
	a, r := o.Analysis, o.Report

	items := make([]contentAnalysisResp, 0, len(a.ContentAnalysis))
	for _, ca := range a.ContentAnalysis {
		items = append(items, contentAnalysisResp{
			PostIndex:    ca.PostIndex,
			Sentiment:    string(ca.Sentiment),
			AIComment:    ca.AIComment,
			BrandMention: ca.BrandMention,
		})
	}

	resp := analyzeResp{
		SentimentScore:     a.SentimentScore,
		OverallSentiment:   string(a.OverallSentiment),
		BrandAlignment:     string(a.BrandAlignment),
		AIQuote:            a.AIQuote,
		TopKeywords:        a.TopKeywords,
		Recommendations:    a.Recommendations,
		RiskFactors:        a.RiskFactors,
		Opportunities:      a.Opportunities,
		EngagementInsights: a.EngagementInsights,
		ContentAnalysis:    items,
		Summary: summaryResp{
			TotalPosts:        r.TotalPosts,
			TotalEngagement:   r.TotalEngagement,
			AverageEngagement: r.AverageEngagement,
			BrandMentions:     r.BrandMentions,
			BrandMentionRate:  r.BrandMentionRate,
			SentimentDistribution: sentimentDistributionResp{
				Positive: r.SentimentDistribution.Positive,
				Neutral:  r.SentimentDistribution.Neutral,
				Negative: r.SentimentDistribution.Negative,
			},
		},
		Tags: r.Tags,
	}
	if includePosts {
		resp.Posts = newPostsResp(o.Posts)
	}
	return resp
}

func (h *handler) newMetadataResp(m analysis.Metadata) metadataResp {
	return metadataResp{
		RequestID:  m.RequestID,
		Influencer: m.Influencer,
		Brand:      m.Brand,
		Platform:   string(m.Platform),
		Source:     m.Source,
		Provider:   m.Provider,
		Model:      m.Model,
		DurationMs: m.DurationMs,
		AnalyzedAt: m.AnalyzedAt.UTC().Format(time.RFC3339),
		Cached:     m.Cached,
	}
}

func (h *handler) newListPostsResp(o analysis.PostsOutput) listPostsResp {
	return listPostsResp{
		Posts: newPostsResp(o.Posts),
		Total: len(o.Posts),
	}
}

func newPostsResp(posts []model.Post) []postResp {
	out := make([]postResp, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResp{
			ID:          p.ID,
			Influencer:  p.Influencer,
			Platform:    string(p.Platform),
			CaptionText: p.CaptionText,
			PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339),
			Engagement: engagementResp{
				Likes:    p.Engagement.Likes,
				Comments: p.Engagement.Comments,
				Shares:   p.Engagement.Shares,
				Views:    p.Engagement.Views,
			},
			Hashtags: p.Hashtags,
			Mentions: p.Mentions,
		})
	}
	return out
}
