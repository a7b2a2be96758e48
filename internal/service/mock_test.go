package service

import (
	"context"

	"github.com/google/uuid"

	"video-share-api/internal/domain"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc             func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindRootsByVideoIDFunc func(ctx context.Context, videoID string) ([]*domain.Comment, error)
	FindByParentIDsFunc    func(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error)
	UpdateTextFunc         func(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	DeleteSubtreeFunc      func(ctx context.Context, rootID uuid.UUID) (int64, error)
	FindOrphanIDsFunc      func(ctx context.Context, limit int) ([]uuid.UUID, error)
	DeleteBatchFunc        func(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountByVideoIDFunc     func(ctx context.Context, videoID string) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindRootsByVideoID(ctx context.Context, videoID string) ([]*domain.Comment, error) {
	if m.FindRootsByVideoIDFunc != nil {
		return m.FindRootsByVideoIDFunc(ctx, videoID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByParentIDsFunc != nil {
		return m.FindByParentIDsFunc(ctx, parentIDs)
	}
	return []*domain.Comment{}, nil
}

func (m *MockCommentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	if m.UpdateTextFunc != nil {
		return m.UpdateTextFunc(ctx, id, text)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteSubtree(ctx context.Context, rootID uuid.UUID) (int64, error) {
	if m.DeleteSubtreeFunc != nil {
		return m.DeleteSubtreeFunc(ctx, rootID)
	}
	return 0, nil
}

func (m *MockCommentRepository) FindOrphanIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if m.FindOrphanIDsFunc != nil {
		return m.FindOrphanIDsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockCommentRepository) CountByVideoID(ctx context.Context, videoID string) (int64, error) {
	if m.CountByVideoIDFunc != nil {
		return m.CountByVideoIDFunc(ctx, videoID)
	}
	return 0, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *domain.User) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc          func(ctx context.Context, username string) (*domain.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsernameOrEmailFunc func(ctx context.Context, username, email string) (bool, error)
	SetChannelIDFunc            func(ctx context.Context, userID, channelID uuid.UUID) error
	ClearChannelIDFunc          func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.ExistsByUsernameOrEmailFunc != nil {
		return m.ExistsByUsernameOrEmailFunc(ctx, username, email)
	}
	return false, nil
}

func (m *MockUserRepository) SetChannelID(ctx context.Context, userID, channelID uuid.UUID) error {
	if m.SetChannelIDFunc != nil {
		return m.SetChannelIDFunc(ctx, userID, channelID)
	}
	return nil
}

func (m *MockUserRepository) ClearChannelID(ctx context.Context, userID uuid.UUID) error {
	if m.ClearChannelIDFunc != nil {
		return m.ClearChannelIDFunc(ctx, userID)
	}
	return nil
}

// MockChannelRepository is a mock implementation of ChannelRepository
type MockChannelRepository struct {
	CreateFunc         func(ctx context.Context, channel *domain.Channel) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	FindByUserIDFunc   func(ctx context.Context, userID uuid.UUID) (*domain.Channel, error)
	FindByHandleFunc   func(ctx context.Context, handle string) (*domain.Channel, error)
	ExistsByHandleFunc func(ctx context.Context, handle string) (bool, error)
	UpdateFunc         func(ctx context.Context, channel *domain.Channel) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListFunc           func(ctx context.Context, limit, offset int) ([]*domain.Channel, error)
}

func (m *MockChannelRepository) Create(ctx context.Context, channel *domain.Channel) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, channel)
	}
	return nil
}

func (m *MockChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockChannelRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Channel, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockChannelRepository) FindByHandle(ctx context.Context, handle string) (*domain.Channel, error) {
	if m.FindByHandleFunc != nil {
		return m.FindByHandleFunc(ctx, handle)
	}
	return nil, nil
}

func (m *MockChannelRepository) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	if m.ExistsByHandleFunc != nil {
		return m.ExistsByHandleFunc(ctx, handle)
	}
	return false, nil
}

func (m *MockChannelRepository) Update(ctx context.Context, channel *domain.Channel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, channel)
	}
	return nil
}

func (m *MockChannelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockChannelRepository) List(ctx context.Context, limit, offset int) ([]*domain.Channel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	CreateFunc            func(ctx context.Context, video *domain.Video) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByChannelIDFunc   func(ctx context.Context, channelID uuid.UUID) ([]*domain.Video, error)
	UpdateFunc            func(ctx context.Context, video *domain.Video) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	DeleteByChannelIDFunc func(ctx context.Context, channelID uuid.UUID) (int64, error)
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Video, error)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVideoRepository) FindByChannelID(ctx context.Context, channelID uuid.UUID) ([]*domain.Video, error) {
	if m.FindByChannelIDFunc != nil {
		return m.FindByChannelIDFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *MockVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVideoRepository) DeleteByChannelID(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.DeleteByChannelIDFunc != nil {
		return m.DeleteByChannelIDFunc(ctx, channelID)
	}
	return 0, nil
}

func (m *MockVideoRepository) List(ctx context.Context, limit, offset int) ([]*domain.Video, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}
