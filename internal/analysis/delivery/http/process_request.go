package http

import (
	pkgErrors "brandpulse-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "analysis.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, pkgErrors.FromBinding(err, "body", "request body must be a JSON object")
	}
	return req, nil
}

func (h *handler) processListPostsRequest(c *gin.Context) (listPostsReq, error) {
	var req listPostsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "analysis.delivery.http.processListPostsRequest: ShouldBindQuery failed: %v", err)
		return req, pkgErrors.FromBinding(err, "query", "invalid query parameters")
	}
	return req, nil
}
