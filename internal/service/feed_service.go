package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"video-share-api/internal/client"
	"video-share-api/internal/response"
)

// FeedService proxies the upstream video platform feed with a Redis cache in
// front, so browsing the site does not burn through the upstream quota
type FeedService interface {
	Trending(ctx context.Context, region string) ([]client.FeedVideo, error)
	Search(ctx context.Context, query string) ([]client.FeedVideo, error)
	VideoDetail(ctx context.Context, videoID string) (*client.FeedVideo, error)
}

const feedPageSize = 24

// feedServiceImpl is the implementation of FeedService
type feedServiceImpl struct {
	platform client.VideoPlatformClient
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewFeedService creates a new instance of FeedService. A nil redis client
// disables caching and every call goes upstream.
func NewFeedService(platform client.VideoPlatformClient, redisClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) FeedService {
	return &feedServiceImpl{
		platform: platform,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Trending returns the trending feed for a region
func (s *feedServiceImpl) Trending(ctx context.Context, region string) ([]client.FeedVideo, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = "US"
	}

	cacheKey := fmt.Sprintf("feed:trending:%s", region)
	var videos []client.FeedVideo
	if s.cacheGet(ctx, cacheKey, &videos) {
		return videos, nil
	}

	videos, err := s.platform.Trending(ctx, region, feedPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch trending feed", err.Error())
	}

	s.cacheSet(ctx, cacheKey, videos)
	return videos, nil
}

// Search returns videos matching a query
func (s *feedServiceImpl) Search(ctx context.Context, query string) ([]client.FeedVideo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, response.NewValidationError("Search query must not be empty", "")
	}

	cacheKey := fmt.Sprintf("feed:search:%s", strings.ToLower(query))
	var videos []client.FeedVideo
	if s.cacheGet(ctx, cacheKey, &videos) {
		return videos, nil
	}

	videos, err := s.platform.Search(ctx, query, feedPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to search videos", err.Error())
	}

	s.cacheSet(ctx, cacheKey, videos)
	return videos, nil
}

// VideoDetail returns a single upstream video
func (s *feedServiceImpl) VideoDetail(ctx context.Context, videoID string) (*client.FeedVideo, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, response.NewValidationError("Video ID must not be empty", "")
	}

	cacheKey := fmt.Sprintf("feed:video:%s", videoID)
	var video client.FeedVideo
	if s.cacheGet(ctx, cacheKey, &video) {
		return &video, nil
	}

	detail, err := s.platform.VideoDetail(ctx, videoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch video detail", err.Error())
	}

	s.cacheSet(ctx, cacheKey, detail)
	return detail, nil
}

// cacheGet loads a cached value, reporting whether it was present. Cache
// failures are logged and treated as misses.
func (s *feedServiceImpl) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.redis == nil {
		return false
	}
	raw, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Feed cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("Feed cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *feedServiceImpl) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Feed cache write failed", zap.String("key", key), zap.Error(err))
	}
}
