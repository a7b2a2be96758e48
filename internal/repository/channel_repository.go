package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
)

// ChannelRepository defines the interface for channel data access
type ChannelRepository interface {
	Create(ctx context.Context, channel *domain.Channel) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Channel, error)
	FindByHandle(ctx context.Context, handle string) (*domain.Channel, error)
	ExistsByHandle(ctx context.Context, handle string) (bool, error)
	Update(ctx context.Context, channel *domain.Channel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*domain.Channel, error)
}

type channelRepositoryImpl struct {
	db *gorm.DB
}

// NewChannelRepository creates a new instance of ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepositoryImpl{db: db}
}

func (r *channelRepositoryImpl) Create(ctx context.Context, channel *domain.Channel) error {
	if err := r.db.WithContext(ctx).Create(channel).Error; err != nil {
		return err
	}
	return nil
}

func (r *channelRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	var channel domain.Channel
	if err := r.db.WithContext(ctx).First(&channel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Channel, error) {
	var channel domain.Channel
	if err := r.db.WithContext(ctx).First(&channel, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepositoryImpl) FindByHandle(ctx context.Context, handle string) (*domain.Channel, error) {
	var channel domain.Channel
	if err := r.db.WithContext(ctx).First(&channel, "handle = ?", handle).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepositoryImpl) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	var channel domain.Channel
	err := r.db.WithContext(ctx).First(&channel, "handle = ?", handle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *channelRepositoryImpl) Update(ctx context.Context, channel *domain.Channel) error {
	return r.db.WithContext(ctx).Save(channel).Error
}

func (r *channelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Channel{}, "id = ?", id).Error
}

func (r *channelRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*domain.Channel, error) {
	var channels []*domain.Channel
	query := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}
