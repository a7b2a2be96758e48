package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateVideoRequest represents the request to register video metadata on a channel
type CreateVideoRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"omitempty,max=10000"`
	URL         string   `json:"url" binding:"required,url,max=2048"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,max=64"`
}

// UpdateVideoRequest represents the request to update video metadata
type UpdateVideoRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=10000"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,max=64"`
}

// VideoResponse represents the video metadata response
type VideoResponse struct {
	VideoID     uuid.UUID `json:"videoId"`
	ChannelID   uuid.UUID `json:"channelId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Tags        []string  `json:"tags"`
	// Populated on the detail view only, listings skip the count query
	CommentCount int64     `json:"commentCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
