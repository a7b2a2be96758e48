package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-share-api/internal/dto"
	"video-share-api/internal/response"
	"video-share-api/internal/service"
)

type ChannelHandler struct {
	channelService service.ChannelService
	videoService   service.VideoService
}

func NewChannelHandler(channelService service.ChannelService, videoService service.VideoService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
		videoService:   videoService,
	}
}

// CreateChannel godoc
// @Summary      Create the caller's channel
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateChannelRequest true "Channel to create"
// @Success      201 {object} response.SuccessResponse{data=dto.ChannelResponse} "Channel created"
// @Failure      409 {object} response.ErrorResponse "Handle taken or channel exists"
// @Router       /channels [post]
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	channel, err := h.channelService.CreateChannel(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, channel)
}

// GetChannel godoc
// @Summary      Get a channel by ID
// @Tags         channels
// @Produce      json
// @Param        channelId path string true "Channel ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ChannelResponse}
// @Failure      404 {object} response.ErrorResponse "Channel not found"
// @Router       /channels/{channelId} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("channelId"))
	if err != nil {
		// Fall back to handle lookup so /channels/myhandle works too
		channel, hErr := h.channelService.GetChannelByHandle(c.Request.Context(), c.Param("channelId"))
		if hErr != nil {
			handleServiceError(c, hErr)
			return
		}
		response.SendSuccess(c, http.StatusOK, channel)
		return
	}

	channel, err := h.channelService.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, channel)
}

// ListChannels godoc
// @Summary      List channels
// @Tags         channels
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ChannelResponse}
// @Router       /channels [get]
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	limit, offset := pagination(c)

	channels, err := h.channelService.ListChannels(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, channels)
}

// UpdateChannel godoc
// @Summary      Update the caller's channel
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        channelId path string true "Channel ID (UUID)"
// @Param        request body dto.UpdateChannelRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ChannelResponse}
// @Failure      403 {object} response.ErrorResponse "Not the channel owner"
// @Failure      404 {object} response.ErrorResponse "Channel not found"
// @Router       /channels/{channelId} [put]
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	channelID, err := uuid.Parse(c.Param("channelId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid channel ID")
		return
	}

	var req dto.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	channel, err := h.channelService.UpdateChannel(c.Request.Context(), userID, channelID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, channel)
}

// DeleteChannel godoc
// @Summary      Delete the caller's channel
// @Tags         channels
// @Produce      json
// @Param        channelId path string true "Channel ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse "Not the channel owner"
// @Failure      404 {object} response.ErrorResponse "Channel not found"
// @Router       /channels/{channelId} [delete]
func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	channelID, err := uuid.Parse(c.Param("channelId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid channel ID")
		return
	}

	if err := h.channelService.DeleteChannel(c.Request.Context(), userID, channelID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// GetChannelVideos godoc
// @Summary      List a channel's videos
// @Tags         channels
// @Produce      json
// @Param        channelId path string true "Channel ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.VideoResponse}
// @Router       /channels/{channelId}/videos [get]
func (h *ChannelHandler) GetChannelVideos(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("channelId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid channel ID")
		return
	}

	videos, err := h.videoService.GetVideosByChannel(c.Request.Context(), channelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, videos)
}

// pagination reads limit/offset query params with sane bounds
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
