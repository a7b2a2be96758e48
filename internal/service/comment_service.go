package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
	"video-share-api/internal/dto"
	"video-share-api/internal/metrics"
	"video-share-api/internal/repository"
	"video-share-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	CreateReply(ctx context.Context, parentID uuid.UUID, req *dto.CreateReplyRequest) (*dto.CommentResponse, error)
	GetCommentsForVideo(ctx context.Context, videoID string) ([]*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo repository.CommentRepository, m *metrics.Metrics, logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment creates a new top-level comment on a video
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, response.NewValidationError("Comment text must not be empty", "")
	}
	if strings.TrimSpace(req.VideoID) == "" {
		return nil, response.NewValidationError("Video ID must not be empty", "")
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, response.NewValidationError("Author must not be empty", "")
	}

	comment := &domain.Comment{
		VideoID:     req.VideoID,
		Author:      req.Author,
		Text:        text,
		AvatarColor: req.AvatarColor,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("video_id", comment.VideoID),
	)

	return dto.ToCommentResponse(comment), nil
}

// CreateReply creates a reply under an existing comment. A reply to a missing
// parent is rejected so the tree never gains unreachable rows. The video is
// always inherited from the parent.
func (s *commentServiceImpl) CreateReply(ctx context.Context, parentID uuid.UUID, req *dto.CreateReplyRequest) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, response.NewValidationError("Reply text must not be empty", "")
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, response.NewValidationError("Author must not be empty", "")
	}

	parent, err := s.commentRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Parent comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent comment", err.Error())
	}

	reply := &domain.Comment{
		VideoID:     parent.VideoID,
		Author:      req.Author,
		Text:        text,
		AvatarColor: req.AvatarColor,
		ParentID:    &parent.ID,
	}

	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create reply", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementReplyCreated()
	}
	s.logger.Info("Reply created",
		zap.String("comment_id", reply.ID.String()),
		zap.String("parent_id", parent.ID.String()),
	)

	return dto.ToCommentResponse(reply), nil
}

// GetCommentsForVideo returns a video's comment forest: roots newest first,
// each node's replies oldest first. Subtrees are populated one level at a
// time from the parent_id index, so depth never recurses the call stack.
func (s *commentServiceImpl) GetCommentsForVideo(ctx context.Context, videoID string) ([]*dto.CommentResponse, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, response.NewValidationError("Video ID must not be empty", "")
	}

	roots, err := s.commentRepo.FindRootsByVideoID(ctx, videoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	if err := s.populateReplies(ctx, roots); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch replies", err.Error())
	}

	return dto.ToCommentResponses(roots), nil
}

// populateReplies attaches reply subtrees to the given comments, fetching one
// tree level per query
func (s *commentServiceImpl) populateReplies(ctx context.Context, comments []*domain.Comment) error {
	frontier := comments
	for len(frontier) > 0 {
		byID := make(map[uuid.UUID]*domain.Comment, len(frontier))
		parentIDs := make([]uuid.UUID, 0, len(frontier))
		for _, c := range frontier {
			c.Replies = []*domain.Comment{}
			byID[c.ID] = c
			parentIDs = append(parentIDs, c.ID)
		}

		children, err := s.commentRepo.FindByParentIDs(ctx, parentIDs)
		if err != nil {
			return err
		}

		// FindByParentIDs returns oldest first, append preserves that order
		for _, child := range children {
			parent := byID[*child.ParentID]
			parent.Replies = append(parent.Replies, child)
		}

		frontier = children
	}
	return nil
}

// UpdateComment replaces a comment's text. Author, video, parent link, and
// position in the tree are immutable.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, response.NewValidationError("Comment text must not be empty", "")
	}

	updated, err := s.commentRepo.UpdateText(ctx, commentID, text)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	updated.Text = text
	return dto.ToCommentResponse(updated), nil
}

// DeleteComment removes a comment and its whole reply subtree, returning the
// number of rows removed. Deleting an already-deleted comment removes zero
// rows and succeeds.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	deleted, err := s.commentRepo.DeleteSubtree(ctx, commentID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	if deleted > 0 {
		if s.metrics != nil {
			s.metrics.AddCommentsDeleted(deleted)
		}
		s.logger.Info("Comment subtree deleted",
			zap.String("comment_id", commentID.String()),
			zap.Int64("rows", deleted),
		)
	}

	return deleted, nil
}
