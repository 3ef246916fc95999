package http

import (
	pkgErrors "brandpulse-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "brief.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		var verrs pkgErrors.ValidationErrors
		verrs.Add("query", "page and limit must be integers")
		return req, verrs
	}
	return req, nil
}

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "brief.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		var verrs pkgErrors.ValidationErrors
		verrs.Add("tracker_id", "tracker_id is required")
		return req, verrs
	}
	return req, nil
}
