package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-share-api/internal/client"
	"video-share-api/internal/config"
	"video-share-api/internal/handler"
	"video-share-api/internal/metrics"
	"video-share-api/internal/middleware"
	"video-share-api/internal/repository"
	"video-share-api/internal/service"
)

func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" || cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.CORS(strings.Split(cfg.CORS.AllowedOrigins, ",")))

	// Initialize repositories
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	// Initialize upstream platform client for the browse feed
	var platformClient client.VideoPlatformClient
	if cfg.VideoAPI.APIKey != "" {
		platformClient = client.NewVideoPlatformClient(cfg.VideoAPI.BaseURL, cfg.VideoAPI.APIKey, cfg.VideoAPI.Timeout, logger, m)
		logger.Info("Video platform client initialized", zap.String("base_url", cfg.VideoAPI.BaseURL))
	} else {
		logger.Warn("Video API key not configured, feed endpoints will be unavailable")
	}

	// Initialize services
	commentService := service.NewCommentService(commentRepo, m, logger)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn, logger)
	channelService := service.NewChannelService(channelRepo, videoRepo, userRepo, logger)
	videoService := service.NewVideoService(videoRepo, channelRepo, commentRepo, m, logger)

	// Initialize handlers
	commentHandler := handler.NewCommentHandler(commentService)
	authHandler := handler.NewAuthHandler(authService)
	channelHandler := handler.NewChannelHandler(channelService, videoService)
	videoHandler := handler.NewVideoHandler(videoService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	var feedHandler *handler.FeedHandler
	if platformClient != nil {
		feedService := service.NewFeedService(platformClient, redisClient, cfg.Redis.CacheTTL, logger)
		feedHandler = handler.NewFeedHandler(feedService)
	}

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes with base path
	api := r.Group(cfg.Server.BasePath)
	{
		// Health under base path
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Auth routes
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/verify", authHandler.VerifyToken)

		// Comment routes (public, matching the web client)
		api.POST("/comments", commentHandler.CreateComment)
		api.POST("/comments/:commentId/replies", commentHandler.CreateReply)
		api.GET("/comments/video/:videoId", commentHandler.GetCommentsForVideo)
		api.PUT("/comments/:commentId", commentHandler.UpdateComment)
		api.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		// Public read routes
		api.GET("/channels", channelHandler.ListChannels)
		api.GET("/channels/:channelId", channelHandler.GetChannel)
		api.GET("/channels/:channelId/videos", channelHandler.GetChannelVideos)
		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/:videoId", videoHandler.GetVideo)

		// Browse feed (proxied to the upstream platform)
		if feedHandler != nil {
			api.GET("/feed/trending", feedHandler.Trending)
			api.GET("/feed/search", feedHandler.Search)
			api.GET("/feed/videos/:videoId", feedHandler.VideoDetail)
		}

		// Authenticated routes
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWT.Secret))
		{
			authenticated.POST("/channels", channelHandler.CreateChannel)
			authenticated.PUT("/channels/:channelId", channelHandler.UpdateChannel)
			authenticated.DELETE("/channels/:channelId", channelHandler.DeleteChannel)

			authenticated.POST("/channels/:channelId/videos", videoHandler.CreateVideo)
			authenticated.PUT("/videos/:videoId", videoHandler.UpdateVideo)
			authenticated.DELETE("/videos/:videoId", videoHandler.DeleteVideo)
		}
	}

	return r
}
