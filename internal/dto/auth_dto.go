package dto

import (
	"time"

	"github.com/google/uuid"
)

// SignUpRequest represents the request to register a new user
type SignUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the login request. Username also accepts the
// account email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	UserID    uuid.UUID  `json:"userId"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	ChannelID *uuid.UUID `json:"channelId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AuthResponse carries a signed token alongside the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
