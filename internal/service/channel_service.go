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
	"video-share-api/internal/repository"
	"video-share-api/internal/response"
)

// ChannelService defines the interface for channel business logic
type ChannelService interface {
	CreateChannel(ctx context.Context, userID uuid.UUID, req *dto.CreateChannelRequest) (*dto.ChannelResponse, error)
	GetChannel(ctx context.Context, channelID uuid.UUID) (*dto.ChannelResponse, error)
	GetChannelByHandle(ctx context.Context, handle string) (*dto.ChannelResponse, error)
	UpdateChannel(ctx context.Context, userID, channelID uuid.UUID, req *dto.UpdateChannelRequest) (*dto.ChannelResponse, error)
	DeleteChannel(ctx context.Context, userID, channelID uuid.UUID) error
	ListChannels(ctx context.Context, limit, offset int) ([]*dto.ChannelResponse, error)
}

// channelServiceImpl is the implementation of ChannelService
type channelServiceImpl struct {
	channelRepo repository.ChannelRepository
	videoRepo   repository.VideoRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

// NewChannelService creates a new instance of ChannelService
func NewChannelService(channelRepo repository.ChannelRepository, videoRepo repository.VideoRepository, userRepo repository.UserRepository, logger *zap.Logger) ChannelService {
	return &channelServiceImpl{
		channelRepo: channelRepo,
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateChannel creates the user's channel. Each user gets at most one.
func (s *channelServiceImpl) CreateChannel(ctx context.Context, userID uuid.UUID, req *dto.CreateChannelRequest) (*dto.ChannelResponse, error) {
	handle := strings.ToLower(strings.TrimSpace(req.Handle))
	if handle == "" {
		return nil, response.NewValidationError("Channel handle must not be empty", "")
	}

	if _, err := s.channelRepo.FindByUserID(ctx, userID); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User already has a channel", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing channel", err.Error())
	}

	taken, err := s.channelRepo.ExistsByHandle(ctx, handle)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check channel handle", err.Error())
	}
	if taken {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Channel handle is already taken", "")
	}

	channel := &domain.Channel{
		UserID:      userID,
		Name:        req.Name,
		Handle:      handle,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
	}
	if err := s.channelRepo.Create(ctx, channel); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create channel", err.Error())
	}

	// Back-link the channel on the owning user
	if err := s.userRepo.SetChannelID(ctx, userID, channel.ID); err != nil {
		s.logger.Error("Failed to link channel to user",
			zap.String("user_id", userID.String()),
			zap.String("channel_id", channel.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Channel created",
		zap.String("channel_id", channel.ID.String()),
		zap.String("handle", channel.Handle),
	)

	return toChannelResponse(channel), nil
}

// GetChannel fetches a channel by ID
func (s *channelServiceImpl) GetChannel(ctx context.Context, channelID uuid.UUID) (*dto.ChannelResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Channel not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}
	return toChannelResponse(channel), nil
}

// GetChannelByHandle fetches a channel by its unique handle
func (s *channelServiceImpl) GetChannelByHandle(ctx context.Context, handle string) (*dto.ChannelResponse, error) {
	channel, err := s.channelRepo.FindByHandle(ctx, strings.ToLower(handle))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Channel not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}
	return toChannelResponse(channel), nil
}

// UpdateChannel updates channel fields. Only the owner may update.
func (s *channelServiceImpl) UpdateChannel(ctx context.Context, userID, channelID uuid.UUID, req *dto.UpdateChannelRequest) (*dto.ChannelResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Channel not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}

	if channel.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the channel owner may update it", "")
	}

	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.Description != nil {
		channel.Description = *req.Description
	}
	if req.AvatarURL != nil {
		channel.AvatarURL = *req.AvatarURL
	}

	if err := s.channelRepo.Update(ctx, channel); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update channel", err.Error())
	}

	return toChannelResponse(channel), nil
}

// DeleteChannel removes a channel together with its videos. Only the owner
// may delete.
func (s *channelServiceImpl) DeleteChannel(ctx context.Context, userID, channelID uuid.UUID) error {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Channel not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}

	if channel.UserID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the channel owner may delete it", "")
	}

	// Videos go first, otherwise they outlive the channel in listings
	removed, err := s.videoRepo.DeleteByChannelID(ctx, channelID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete channel videos", err.Error())
	}

	if err := s.channelRepo.Delete(ctx, channelID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete channel", err.Error())
	}

	if err := s.userRepo.ClearChannelID(ctx, userID); err != nil {
		s.logger.Error("Failed to unlink channel from user",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Channel deleted",
		zap.String("channel_id", channelID.String()),
		zap.Int64("videos_removed", removed),
	)
	return nil
}

// ListChannels lists channels, newest first
func (s *channelServiceImpl) ListChannels(ctx context.Context, limit, offset int) ([]*dto.ChannelResponse, error) {
	channels, err := s.channelRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list channels", err.Error())
	}

	responses := make([]*dto.ChannelResponse, len(channels))
	for i, channel := range channels {
		responses[i] = toChannelResponse(channel)
	}
	return responses, nil
}

func toChannelResponse(channel *domain.Channel) *dto.ChannelResponse {
	return &dto.ChannelResponse{
		ChannelID:   channel.ID,
		UserID:      channel.UserID,
		Name:        channel.Name,
		Handle:      channel.Handle,
		Description: channel.Description,
		AvatarURL:   channel.AvatarURL,
		CreatedAt:   channel.CreatedAt,
		UpdatedAt:   channel.UpdatedAt,
	}
}
