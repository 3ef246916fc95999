package http

import (
	"time"

	"brandpulse-srv/internal/brief"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/paginator"
)

type listReq struct {
	TrackerID string `form:"tracker_id"`
	paginator.PaginateQuery
}

func (r listReq) toInput() brief.ListInput {
	return brief.ListInput{TrackerID: r.TrackerID, Paginate: r.PaginateQuery}
}

type generateReq struct {
	TrackerID string `json:"tracker_id" binding:"required"`
}

type briefResp struct {
	ID               string   `json:"id"`
	TrackerID        string   `json:"tracker_id"`
	Influencer       string   `json:"influencer"`
	Brand            string   `json:"brand"`
	Platform         string   `json:"platform"`
	Headline         string   `json:"headline"`
	Summary          string   `json:"summary"`
	OverallSentiment string   `json:"overall_sentiment"`
	SentimentScore   int      `json:"sentiment_score"`
	BrandAlignment   string   `json:"brand_alignment"`
	Tags             []string `json:"tags"`
	Source           string   `json:"source"`
	CreatedAt        string   `json:"created_at"`
}

type listResp struct {
	Briefs    []briefResp                 `json:"briefs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newBriefResp(b model.Brief) briefResp {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return briefResp{
		ID:               b.ID,
		TrackerID:        b.TrackerID,
		Influencer:       b.Influencer,
		Brand:            b.Brand,
		Platform:         string(b.Platform),
		Headline:         b.Headline,
		Summary:          b.Summary,
		OverallSentiment: string(b.OverallSentiment),
		SentimentScore:   b.SentimentScore,
		BrandAlignment:   string(b.BrandAlignment),
		Tags:             tags,
		Source:           b.Source,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListResp(o brief.ListOutput) listResp {
	items := make([]briefResp, 0, len(o.Briefs))
	for _, b := range o.Briefs {
		items = append(items, h.newBriefResp(b))
	}
	return listResp{Briefs: items, Paginator: o.Paginator.ToResponse()}
}
