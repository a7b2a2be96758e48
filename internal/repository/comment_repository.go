package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindRootsByVideoID(ctx context.Context, videoID string) ([]*domain.Comment, error)
	FindByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	DeleteSubtree(ctx context.Context, rootID uuid.UUID) (int64, error)
	FindOrphanIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountByVideoID(ctx context.Context, videoID string) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment row; replies and roots share the same path
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindRootsByVideoID finds top-level comments for a video, newest first
func (r *commentRepositoryImpl) FindRootsByVideoID(ctx context.Context, videoID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("video_id = ? AND parent_id IS NULL", videoID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByParentIDs finds direct replies for a set of parents, oldest first
func (r *commentRepositoryImpl) FindByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []*domain.Comment{}, nil
	}

	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateText replaces a comment's text and returns the updated row
func (r *commentRepositoryImpl) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&comment).
		Update("text", text).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteSubtree removes a comment and every descendant reply, returning the
// number of rows removed. The frontier is walked level by level with an
// indexed parent_id query, so arbitrarily deep threads never touch the call
// stack. Deleting a missing ID removes zero rows and is not an error.
func (r *commentRepositoryImpl) DeleteSubtree(ctx context.Context, rootID uuid.UUID) (int64, error) {
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		frontier := []uuid.UUID{rootID}
		toDelete := []uuid.UUID{rootID}

		for len(frontier) > 0 {
			var childIDs []uuid.UUID
			if err := tx.Model(&domain.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			toDelete = append(toDelete, childIDs...)
			frontier = childIDs
		}

		result := tx.Where("id IN ?", toDelete).Delete(&domain.Comment{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// FindOrphanIDs finds replies whose parent row no longer exists
func (r *commentRepositoryImpl) FindOrphanIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := r.db.WithContext(ctx).
		Table("comments AS c").
		Joins("LEFT JOIN comments AS p ON p.id = c.parent_id AND p.deleted_at IS NULL").
		Where("c.parent_id IS NOT NULL AND c.deleted_at IS NULL AND p.id IS NULL")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("c.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteBatch deletes comments by their IDs
func (r *commentRepositoryImpl) DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByVideoID counts all comments for a video, replies included
func (r *commentRepositoryImpl) CountByVideoID(ctx context.Context, videoID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
