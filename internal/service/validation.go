package service

import (
	"fmt"
	"unicode/utf8"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/response"
)

// Lengths are counted in characters, not bytes.

func validateCreatePost(req *dto.CreatePostRequest) error {
	if req == nil || req.Title == nil || req.Content == nil {
		return response.NewAppError(response.ErrCodeValidation, "제목과 내용을 모두 제공해야 합니다.", "")
	}
	if n := utf8.RuneCountInString(*req.Title); n > domain.TitleMaxLength {
		return response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("제목은 최대 %d글자까지 입력 가능합니다.", domain.TitleMaxLength),
			fmt.Sprintf("title length %d", n))
	}
	return nil
}

func validateCreateComment(req *dto.CreateCommentRequest) error {
	if req == nil || req.Content == nil {
		return response.NewAppError(response.ErrCodeValidation, "댓글 내용을 제공해야 합니다.", "")
	}
	if n := utf8.RuneCountInString(*req.Content); n > domain.CommentMaxLength {
		return response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("댓글은 최대 %d글자까지 입력 가능합니다.", domain.CommentMaxLength),
			fmt.Sprintf("content length %d", n))
	}
	return nil
}

func postNotFound(postID uint) error {
	return response.NewAppError(response.ErrCodePostNotFound, "존재하지 않는 게시글입니다.", fmt.Sprintf("post_id=%d", postID))
}
