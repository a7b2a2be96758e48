package dto

import (
	"time"

	"github.com/google/uuid"

	"video-share-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new top-level comment
// @Description Request body for posting a comment on a video
type CreateCommentRequest struct {
	VideoID     string `json:"videoId" binding:"required,max=64"`
	Author      string `json:"author" binding:"required,max=255"`
	Text        string `json:"text" binding:"required"`
	AvatarColor string `json:"avatarColor" binding:"omitempty,max=32"`
}

// CreateReplyRequest represents the request to reply to an existing comment.
// The video is inherited from the parent, so only author and text are taken.
type CreateReplyRequest struct {
	Author      string `json:"author" binding:"required,max=255"`
	Text        string `json:"text" binding:"required"`
	AvatarColor string `json:"avatarColor" binding:"omitempty,max=32"`
}

// UpdateCommentRequest represents the request to edit a comment's text
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// CommentResponse represents a comment with its reply subtree
type CommentResponse struct {
	CommentID   uuid.UUID          `json:"commentId"`
	VideoID     string             `json:"videoId"`
	Author      string             `json:"author"`
	Text        string             `json:"text"`
	AvatarColor string             `json:"avatarColor,omitempty"`
	ParentID    *uuid.UUID         `json:"parentId,omitempty"`
	Replies     []*CommentResponse `json:"replies"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// DeleteCommentResponse reports how many rows a cascade removed
type DeleteCommentResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToCommentResponse converts a domain comment tree into its response form.
// The walk is iterative so reply depth is bounded only by memory.
func ToCommentResponse(comment *domain.Comment) *CommentResponse {
	root := &CommentResponse{
		CommentID:   comment.ID,
		VideoID:     comment.VideoID,
		Author:      comment.Author,
		Text:        comment.Text,
		AvatarColor: comment.AvatarColor,
		ParentID:    comment.ParentID,
		Replies:     []*CommentResponse{},
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	}

	type pair struct {
		src *domain.Comment
		dst *CommentResponse
	}
	stack := []pair{{comment, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, reply := range p.src.Replies {
			child := &CommentResponse{
				CommentID:   reply.ID,
				VideoID:     reply.VideoID,
				Author:      reply.Author,
				Text:        reply.Text,
				AvatarColor: reply.AvatarColor,
				ParentID:    reply.ParentID,
				Replies:     []*CommentResponse{},
				CreatedAt:   reply.CreatedAt,
				UpdatedAt:   reply.UpdatedAt,
			}
			p.dst.Replies = append(p.dst.Replies, child)
			stack = append(stack, pair{reply, child})
		}
	}

	return root
}

// ToCommentResponses converts a list of comment trees
func ToCommentResponses(comments []*domain.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, ToCommentResponse(comment))
	}
	return responses
}
