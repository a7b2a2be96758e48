package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateChannelRequest represents the request to create a channel
type CreateChannelRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Handle      string `json:"handle" binding:"required,min=3,max=64,alphanum"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty,url,max=2048"`
}

// UpdateChannelRequest represents the request to update channel fields.
// Nil fields are left untouched.
type UpdateChannelRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	AvatarURL   *string `json:"avatarUrl" binding:"omitempty,url,max=2048"`
}

// ChannelResponse represents the channel response
type ChannelResponse struct {
	ChannelID   uuid.UUID `json:"channelId"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Handle      string    `json:"handle"`
	Description string    `json:"description,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
