package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

type PostHandler struct {
	postService service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      게시글 목록 조회
// @Description  모든 게시글을 등록 순서대로 조회합니다
// @Tags         posts
// @Produce      json
// @Success      200 {object} dto.PostListResponse "게시글 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.PostListResponse{Posts: posts})
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  새 게시글을 등록합니다. 제목은 최대 30글자입니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "게시글 작성 요청"
// @Success      200 {object} response.MessageResponse "게시글 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, response.MsgBadRequest)
		return
	}

	if err := h.postService.CreatePost(c.Request.Context(), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, response.MsgCreated)
}

// GetPost godoc
// @Summary      게시글 조회
// @Description  ID로 게시글 하나를 조회합니다
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} dto.PostResponse "게시글 조회 성공"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, response.MsgNotFound)
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}
