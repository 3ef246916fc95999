package http

import (
	"time"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/pkg/paginator"
)

type createReq struct {
	Influencer string `json:"influencer" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	Platform   string `json:"platform"`
	Notes      string `json:"notes"`
}

func (r createReq) toInput() tracker.CreateInput {
	return tracker.CreateInput{
		Influencer: r.Influencer,
		Brand:      r.Brand,
		Platform:   r.Platform,
		Notes:      r.Notes,
	}
}

type updateReq struct {
	Influencer *string `json:"influencer"`
	Brand      *string `json:"brand"`
	Platform   *string `json:"platform"`
	Notes      *string `json:"notes"`
}

func (r updateReq) toInput(id string) tracker.UpdateInput {
	return tracker.UpdateInput{
		ID:         id,
		Influencer: r.Influencer,
		Brand:      r.Brand,
		Platform:   r.Platform,
		Notes:      r.Notes,
	}
}

type listReq struct {
	Brand    string `form:"brand"`
	Platform string `form:"platform"`
	paginator.PaginateQuery
}

func (r listReq) toInput() tracker.ListInput {
	return tracker.ListInput{
		Brand:    r.Brand,
		Platform: r.Platform,
		Paginate: r.PaginateQuery,
	}
}

type trackerResp struct {
	ID         string `json:"id"`
	Influencer string `json:"influencer"`
	Brand      string `json:"brand"`
	Platform   string `json:"platform"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type listResp struct {
	Trackers  []trackerResp               `json:"trackers"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newTrackerResp(t model.Tracker) trackerResp {
	return trackerResp{
		ID:         t.ID,
		Influencer: t.Influencer,
		Brand:      t.Brand,
		Platform:   string(t.Platform),
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListResp(o tracker.ListOutput) listResp {
	items := make([]trackerResp, 0, len(o.Trackers))
	for _, t := range o.Trackers {
		items = append(items, h.newTrackerResp(t))
	}
	return listResp{
		Trackers:  items,
		Paginator: o.Paginator.ToResponse(),
	}
}
