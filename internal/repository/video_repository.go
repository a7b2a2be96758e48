package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
)

// VideoRepository defines the interface for video metadata access
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByChannelID(ctx context.Context, channelID uuid.UUID) ([]*domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByChannelID(ctx context.Context, channelID uuid.UUID) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Video, error)
}

type videoRepositoryImpl struct {
	db *gorm.DB
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepositoryImpl{db: db}
}

func (r *videoRepositoryImpl) Create(ctx context.Context, video *domain.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return err
	}
	return nil
}

func (r *videoRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	if err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepositoryImpl) FindByChannelID(ctx context.Context, channelID uuid.UUID) ([]*domain.Video, error) {
	var videos []*domain.Video
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepositoryImpl) Update(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Video{}, "id = ?", id).Error
}

// DeleteByChannelID removes every video belonging to a channel, returning the
// number of rows affected. Used when the owning channel is deleted, so its
// videos do not linger in listings.
func (r *videoRepositoryImpl) DeleteByChannelID(ctx context.Context, channelID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Video{}, "channel_id = ?", channelID)
	return result.RowsAffected, result.Error
}

func (r *videoRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*domain.Video, error) {
	var videos []*domain.Video
	query := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
