package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
	"video-share-api/internal/dto"
	"video-share-api/internal/repository"
	"video-share-api/internal/response"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyToken(ctx context.Context, tokenString string) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo  repository.UserRepository
	jwtSecret string
	expiresIn time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, expiresIn time.Duration, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		expiresIn: expiresIn,
		logger:    logger,
	}
}

// SignUp registers a new user and returns a signed token
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing users", err.Error())
	}
	if taken {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username or email is already taken", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return s.issueToken(user)
}

// Login authenticates a user by username or email plus password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.FindByEmail(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password so accounts cannot be probed
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
	}

	return s.issueToken(user)
}

// VerifyToken validates a token and returns the user it belongs to
func (s *authServiceImpl) VerifyToken(ctx context.Context, tokenString string) (*dto.UserResponse, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid or expired token", "")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid token claims", "")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in token", "")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid user ID in token", "")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "User no longer exists", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiresIn).Unix(),
	})

	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign token", err.Error())
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ChannelID: user.ChannelID,
		CreatedAt: user.CreatedAt,
	}
}
