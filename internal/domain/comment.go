package domain

import "github.com/google/uuid"

// Comment represents a single comment or reply on a video.
//
// The parent/child relation is stored only as ParentID; the reply list of a
// comment is derived from the parent_id index at read time. Replies is never
// persisted, which keeps the forward pointer as the single source of truth
// and avoids a dual-write on create/delete.
type Comment struct {
	BaseModel
	VideoID     string     `gorm:"type:varchar(64);not null;index:idx_comments_video_id" json:"video_id"`
	Author      string     `gorm:"type:varchar(255);not null" json:"author"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	AvatarColor string     `gorm:"type:varchar(32)" json:"avatar_color,omitempty"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_id" json:"parent_id"`
	Replies     []*Comment `gorm:"-" json:"replies,omitempty"`
}

// IsRoot reports whether the comment is attached directly to a video.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
