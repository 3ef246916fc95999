package http

import (
	"brandpulse-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze an influencer for a brand
// @Description Generate a post corpus for the influencer and return sentiment, brand alignment and derived tags.
// @Description Without a configured LLM key, or when the model call fails, the analysis is synthesized locally.
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analysis request"
// @Param include_posts query bool false "Include the analysed posts in the response"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/sentiment/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OKWithMetadata(c, h.newAnalyzeResp(o, c.Query("include_posts") == "true"), h.newMetadataResp(o.Metadata))
}

// @Summary Preview synthetic posts
// @Description Return the synthetic post corpus the analysis would run on
// @Tags Sentiment
// @Produce json
// @Param influencer query string true "Influencer handle"
// @Param brand query string false "Brand name"
// @Param platform query string false "instagram, youtube, tiktok or twitter"
// @Param limit query int false "Number of posts (1-50)"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/sentiment/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListPostsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GeneratePosts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ListPosts: usecase GeneratePosts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}
