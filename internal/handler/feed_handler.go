package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"video-share-api/internal/response"
	"video-share-api/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// Trending godoc
// @Summary      Trending videos from the upstream platform
// @Tags         feed
// @Produce      json
// @Param        region query string false "ISO region code" default(US)
// @Success      200 {object} response.SuccessResponse{data=[]client.FeedVideo}
// @Router       /feed/trending [get]
func (h *FeedHandler) Trending(c *gin.Context) {
	region := strings.ToUpper(strings.TrimSpace(c.Query("region")))

	videos, err := h.feedService.Trending(c.Request.Context(), region)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, videos)
}

// Search godoc
// @Summary      Search videos on the upstream platform
// @Tags         feed
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {object} response.SuccessResponse{data=[]client.FeedVideo}
// @Failure      400 {object} response.ErrorResponse "Missing query"
// @Router       /feed/search [get]
func (h *FeedHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Search query is required")
		return
	}

	videos, err := h.feedService.Search(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, videos)
}

// VideoDetail godoc
// @Summary      Upstream video detail by platform ID
// @Tags         feed
// @Produce      json
// @Param        videoId path string true "Platform video ID"
// @Success      200 {object} response.SuccessResponse{data=client.FeedVideo}
// @Failure      404 {object} response.ErrorResponse "Video not found upstream"
// @Router       /feed/videos/{videoId} [get]
func (h *FeedHandler) VideoDetail(c *gin.Context) {
	videoID := strings.TrimSpace(c.Param("videoId"))
	if videoID == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Video ID is required")
		return
	}

	video, err := h.feedService.VideoDetail(c.Request.Context(), videoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}
