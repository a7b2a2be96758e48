package domain

import "github.com/google/uuid"

// User represents a registered account
type User struct {
	BaseModel
	Username     string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_username" json:"username"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	ChannelID    *uuid.UUID `gorm:"type:uuid" json:"channel_id"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
