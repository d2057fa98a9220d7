package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	ListComments(ctx context.Context, postID uint) ([]*dto.CommentResponse, error)
	// CreateComment checks the post before looking at req; a nil req means
	// the request body could not be read.
	CreateComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *commentServiceImpl) ensurePostExists(ctx context.Context, postID uint) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify post", err.Error())
	}
	if !exists {
		return postNotFound(postID)
	}
	return nil
}

// ListComments returns the comments of an existing post
func (s *commentServiceImpl) ListComments(ctx context.Context, postID uint) ([]*dto.CommentResponse, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, dto.NewCommentResponse(c))
	}
	return responses, nil
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) error {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return err
	}

	if err := validateCreateComment(req); err != nil {
		return err
	}

	comment := &domain.Comment{
		Content:    *req.Content,
		CreateDate: domain.Today(s.now()),
		PostID:     postID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment",
			zap.Uint("post_id", postID),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	s.logger.Info("Comment created",
		zap.Uint("post_id", postID),
		zap.Uint("comment_id", comment.ID))
	return nil
}
