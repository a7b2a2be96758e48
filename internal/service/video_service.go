package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
	"video-share-api/internal/dto"
	"video-share-api/internal/metrics"
	"video-share-api/internal/repository"
	"video-share-api/internal/response"
)

// VideoService defines the interface for video metadata business logic
type VideoService interface {
	CreateVideo(ctx context.Context, userID, channelID uuid.UUID, req *dto.CreateVideoRequest) (*dto.VideoResponse, error)
	GetVideo(ctx context.Context, videoID uuid.UUID) (*dto.VideoResponse, error)
	GetVideosByChannel(ctx context.Context, channelID uuid.UUID) ([]*dto.VideoResponse, error)
	UpdateVideo(ctx context.Context, userID, videoID uuid.UUID, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error)
	DeleteVideo(ctx context.Context, userID, videoID uuid.UUID) error
	ListVideos(ctx context.Context, limit, offset int) ([]*dto.VideoResponse, error)
}

// videoServiceImpl is the implementation of VideoService
type videoServiceImpl struct {
	videoRepo   repository.VideoRepository
	channelRepo repository.ChannelRepository
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewVideoService creates a new instance of VideoService
func NewVideoService(videoRepo repository.VideoRepository, channelRepo repository.ChannelRepository, commentRepo repository.CommentRepository, m *metrics.Metrics, logger *zap.Logger) VideoService {
	return &videoServiceImpl{
		videoRepo:   videoRepo,
		channelRepo: channelRepo,
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateVideo registers video metadata under the user's channel
func (s *videoServiceImpl) CreateVideo(ctx context.Context, userID, channelID uuid.UUID, req *dto.CreateVideoRequest) (*dto.VideoResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Channel not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}
	if channel.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the channel owner may upload videos", "")
	}

	tags, err := marshalTags(req.Tags)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tags", err.Error())
	}

	video := &domain.Video{
		ChannelID:   channelID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Tags:        tags,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create video", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementVideoCreated()
	}
	s.logger.Info("Video created",
		zap.String("video_id", video.ID.String()),
		zap.String("channel_id", channelID.String()),
	)

	return toVideoResponse(video), nil
}

// GetVideo fetches video metadata by ID, including its comment count
func (s *videoServiceImpl) GetVideo(ctx context.Context, videoID uuid.UUID) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Video not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
	}

	resp := toVideoResponse(video)
	count, err := s.commentRepo.CountByVideoID(ctx, video.ID.String())
	if err != nil {
		// The detail view still renders without a count
		s.logger.Warn("Failed to count video comments",
			zap.String("video_id", video.ID.String()),
			zap.Error(err),
		)
	} else {
		resp.CommentCount = count
	}
	return resp, nil
}

// GetVideosByChannel lists a channel's videos, newest first
func (s *videoServiceImpl) GetVideosByChannel(ctx context.Context, channelID uuid.UUID) ([]*dto.VideoResponse, error) {
	videos, err := s.videoRepo.FindByChannelID(ctx, channelID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch videos", err.Error())
	}
	return toVideoResponses(videos), nil
}

// UpdateVideo updates video metadata. Only the channel owner may update.
func (s *videoServiceImpl) UpdateVideo(ctx context.Context, userID, videoID uuid.UUID, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Video not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
	}

	if err := s.requireOwner(ctx, userID, video.ChannelID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.Tags != nil {
		tags, err := marshalTags(req.Tags)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tags", err.Error())
		}
		video.Tags = tags
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update video", err.Error())
	}

	return toVideoResponse(video), nil
}

// DeleteVideo removes video metadata. Only the channel owner may delete.
func (s *videoServiceImpl) DeleteVideo(ctx context.Context, userID, videoID uuid.UUID) error {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Video not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch video", err.Error())
	}

	if err := s.requireOwner(ctx, userID, video.ChannelID); err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete video", err.Error())
	}

	s.logger.Info("Video deleted", zap.String("video_id", videoID.String()))
	return nil
}

// ListVideos lists videos across all channels, newest first
func (s *videoServiceImpl) ListVideos(ctx context.Context, limit, offset int) ([]*dto.VideoResponse, error) {
	videos, err := s.videoRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list videos", err.Error())
	}
	return toVideoResponses(videos), nil
}

func (s *videoServiceImpl) requireOwner(ctx context.Context, userID, channelID uuid.UUID) error {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch channel", err.Error())
	}
	if channel.UserID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the channel owner may modify this video", "")
	}
	return nil
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toVideoResponse(video *domain.Video) *dto.VideoResponse {
	tags := []string{}
	if len(video.Tags) > 0 {
		// Tags were marshalled on the way in, a decode failure leaves them empty
		_ = json.Unmarshal(video.Tags, &tags)
	}
	return &dto.VideoResponse{
		VideoID:     video.ID,
		ChannelID:   video.ChannelID,
		Title:       video.Title,
		Description: video.Description,
		URL:         video.URL,
		Tags:        tags,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
	}
}

func toVideoResponses(videos []*domain.Video) []*dto.VideoResponse {
	responses := make([]*dto.VideoResponse, len(videos))
	for i, video := range videos {
		responses[i] = toVideoResponse(video)
	}
	return responses
}
