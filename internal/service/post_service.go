package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// PostService defines the interface for post business logic
type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostResponse, error)
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) error
	GetPost(ctx context.Context, postID uint) (*dto.PostResponse, error)
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo repository.PostRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo repository.PostRepository, m *metrics.Metrics, logger *zap.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// ListPosts returns every post; an empty board yields an empty, non-nil slice
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, dto.NewPostResponse(p))
	}
	return responses, nil
}

// CreatePost validates and stores a new post dated today (UTC)
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) error {
	if err := validateCreatePost(req); err != nil {
		return err
	}

	post := &domain.Post{
		Title:      *req.Title,
		Content:    *req.Content,
		CreateDate: domain.Today(s.now()),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("Failed to create post", zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPostCreated()
	}

	s.logger.Info("Post created", zap.Uint("post_id", post.ID))
	return nil
}

// GetPost returns a single post or a POST_NOT_FOUND error
func (s *postServiceImpl) GetPost(ctx context.Context, postID uint) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postNotFound(postID)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	return dto.NewPostResponse(post), nil
}
