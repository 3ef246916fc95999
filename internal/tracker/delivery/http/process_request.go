package http

import (
	pkgErrors "brandpulse-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "tracker.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, pkgErrors.FromBinding(err, "body", "request body must be a JSON object")
	}
	return req, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (string, updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "tracker.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		var verrs pkgErrors.ValidationErrors
		verrs.Add("body", "request body must be a JSON object")
		return "", req, verrs
	}
	return c.Param("id"), req, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "tracker.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		var verrs pkgErrors.ValidationErrors
		verrs.Add("query", "page and limit must be integers")
		return req, verrs
	}
	return req, nil
}
