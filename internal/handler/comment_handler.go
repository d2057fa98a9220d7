package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Description  게시글에 달린 댓글을 등록 순서대로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} dto.CommentListResponse "댓글 목록 조회 성공"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{id}/comment [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, response.MsgNotFound)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.CommentListResponse{Comments: comments})
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  게시글에 댓글을 등록합니다. 게시글 존재 여부를 먼저 확인하며 댓글은 최대 200글자입니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      200 {object} response.MessageResponse "댓글 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{id}/comment [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, response.MsgNotFound)
		return
	}

	// An unreadable body is passed on as nil; the post check comes first.
	var req *dto.CreateCommentRequest
	var body dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&body); err == nil {
		req = &body
	}

	if err := h.commentService.CreateComment(c.Request.Context(), postID, req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, response.MsgCreated)
}
