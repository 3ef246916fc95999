package http

import (
	"brandpulse-srv/internal/brief"
	"brandpulse-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List briefs
// @Description List generated briefs, newest first
// @Tags Briefs
// @Produce json
// @Param tracker_id query string false "Only briefs of this tracker"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/briefs [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "brief.delivery.http.List: usecase List failed: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Generate a brief now
// @Description Analyse the tracker immediately and store the brief
// @Tags Briefs
// @Accept json
// @Produce json
// @Param body body generateReq true "Tracker to brief"
// @Success 201 {object} briefResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/briefs/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.Generate(ctx, brief.GenerateInput{TrackerID: req.TrackerID})
	if err != nil {
		h.l.Warnf(ctx, "brief.delivery.http.Generate: usecase Generate failed: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.Created(c, h.newBriefResp(b))
}
