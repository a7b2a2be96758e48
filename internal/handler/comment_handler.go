package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-share-api/internal/dto"
	"video-share-api/internal/response"
	"video-share-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment godoc
// @Summary      Create a top-level comment
// @Description  Posts a new comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "Comment to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// CreateReply godoc
// @Summary      Reply to a comment
// @Description  Posts a reply under an existing comment. The reply joins the parent's video thread.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        parentId path string true "Parent comment ID (UUID)"
// @Param        request body dto.CreateReplyRequest true "Reply to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "Reply created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Parent comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/{parentId}/replies [post]
func (h *CommentHandler) CreateReply(c *gin.Context) {
	parentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid parent comment ID")
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	reply, err := h.commentService.CreateReply(c.Request.Context(), parentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, reply)
}

// GetCommentsForVideo godoc
// @Summary      List a video's comment threads
// @Description  Returns top-level comments newest first, each with its full reply tree, replies oldest first
// @Tags         comments
// @Produce      json
// @Param        videoId path string true "Video ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "Comment threads"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/video/{videoId} [get]
func (h *CommentHandler) GetCommentsForVideo(c *gin.Context) {
	videoID := c.Param("videoId")

	comments, err := h.commentService.GetCommentsForVideo(c.Request.Context(), videoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// UpdateComment godoc
// @Summary      Edit a comment's text
// @Description  Replaces the text of a comment. Everything else about the comment is immutable.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "New text"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment thread
// @Description  Removes a comment together with its whole reply subtree. Repeating the delete is a no-op.
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DeleteCommentResponse} "Rows removed"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	deleted, err := h.commentService.DeleteComment(c.Request.Context(), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.DeleteCommentResponse{Deleted: deleted})
}
