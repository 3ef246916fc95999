package http

import (
	"brandpulse-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List trackers
// @Description List tracked influencer/brand pairs, newest first
// @Tags Trackers
// @Produce json
// @Param brand query string false "Brand filter (case-insensitive)"
// @Param platform query string false "Platform filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/trackers [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "tracker.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Create a tracker
// @Tags Trackers
// @Accept json
// @Produce json
// @Param body body createReq true "Tracker"
// @Success 201 {object} trackerResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/trackers [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "tracker.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newTrackerResp(t))
}

// @Summary Get a tracker
// @Tags Trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 200 {object} trackerResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/trackers/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTrackerResp(t))
}

// @Summary Update a tracker
// @Description Only the fields present in the body are changed
// @Tags Trackers
// @Accept json
// @Produce json
// @Param id path string true "Tracker ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} trackerResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/trackers/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput(id))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTrackerResp(t))
}

// @Summary Delete a tracker
// @Tags Trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/trackers/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
