package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-share-api/internal/dto"
	"video-share-api/internal/response"
	"video-share-api/internal/service"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// CreateVideo godoc
// @Summary      Register video metadata on a channel
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        channelId path string true "Channel ID (UUID)"
// @Param        request body dto.CreateVideoRequest true "Video metadata"
// @Success      201 {object} response.SuccessResponse{data=dto.VideoResponse} "Video created"
// @Failure      403 {object} response.ErrorResponse "Not the channel owner"
// @Router       /channels/{channelId}/videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	channelID, err := uuid.Parse(c.Param("channelId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid channel ID")
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), userID, channelID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get video metadata
// @Tags         videos
// @Produce      json
// @Param        videoId path string true "Video ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoResponse}
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid video ID")
		return
	}

	video, err := h.videoService.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}

// ListVideos godoc
// @Summary      List videos across channels
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} response.SuccessResponse{data=[]dto.VideoResponse}
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	limit, offset := pagination(c)

	videos, err := h.videoService.ListVideos(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, videos)
}

// UpdateVideo godoc
// @Summary      Update video metadata
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        videoId path string true "Video ID (UUID)"
// @Param        request body dto.UpdateVideoRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.VideoResponse}
// @Failure      403 {object} response.ErrorResponse "Not the channel owner"
// @Failure      404 {object} response.ErrorResponse "Video not found"
// @Router       /videos/{videoId} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid video ID")
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), userID, videoID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete video metadata
// @Tags         videos
// @Produce      json
// @Param        videoId path string true "Video ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "Not the channel owner"
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid video ID")
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), userID, videoID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
