package service

import (
	"context"

	"community-board-api/internal/domain"
)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc   func(ctx context.Context, post *domain.Post) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Post, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Post, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) error
	FindByPostIDFunc func(ctx context.Context, postID uint) ([]*domain.Comment, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return nil, nil
}

func strPtr(s string) *string {
	return &s
}
