package dto

import "community-board-api/internal/domain"

// CreateCommentRequest represents the request to create a comment on a post
type CreateCommentRequest struct {
	Content *string `json:"content" example:"Nice post"`
}

// CommentResponse represents a serialized comment; Post is the owning post id
type CommentResponse struct {
	ID         uint   `json:"id" example:"1"`
	Content    string `json:"content" example:"Nice post"`
	CreateDate string `json:"create_date" example:"2024-05-01"`
	Post       uint   `json:"post" example:"1"`
}

// CommentListResponse wraps the comments of one post
type CommentListResponse struct {
	Comments []*CommentResponse `json:"comments"`
}

func NewCommentResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		Content:    c.Content,
		CreateDate: domain.FormatDate(c.CreateDate),
		Post:       c.PostID,
	}
}
