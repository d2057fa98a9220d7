package dto

import "community-board-api/internal/domain"

// CreatePostRequest represents the request to create a new post.
// Fields are pointers so an absent key can be told apart from an empty string.
type CreatePostRequest struct {
	Title   *string `json:"title" example:"Hello"`
	Content *string `json:"content" example:"First post on the board"`
}

// PostResponse represents a serialized post
type PostResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Hello"`
	Content    string `json:"content" example:"First post on the board"`
	CreateDate string `json:"create_date" example:"2024-05-01"`
}

// PostListResponse wraps every post
type PostListResponse struct {
	Posts []*PostResponse `json:"posts"`
}

// NewPostResponse converts a domain post
func NewPostResponse(p *domain.Post) *PostResponse {
	return &PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CreateDate: domain.FormatDate(p.CreateDate),
	}
}
