package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Channel represents a user's channel. One channel per user.
type Channel struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_channels_user_id" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Handle      string    `gorm:"type:varchar(255);uniqueIndex:uq_channels_handle" json:"handle"`
	Description string    `gorm:"type:text" json:"description"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url"`
	Videos      []Video   `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

// Video represents uploaded video metadata. The URL points at the hosted
// video (external link or file URL); no media bytes are stored here.
type Video struct {
	BaseModel
	ChannelID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_videos_channel_id" json:"channel_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	URL         string         `gorm:"type:text;not null" json:"url"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
}

// TableName specifies the table name for Channel
func (Channel) TableName() string {
	return "channels"
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
