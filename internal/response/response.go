package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes returned in the "error" field of an error body
const (
	ErrCodeValidation   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodePostNotFound = "POST_NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// Fixed user-facing messages
const (
	MsgCreated    = "성공적으로 등록됐습니다."
	MsgBadRequest = "잘못된 요청입니다."
	MsgNotFound   = "요청한 리소스를 찾을 수 없습니다."
	MsgInternal   = "서버 내부 오류가 발생했습니다."
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	StatusCode int    `json:"status_code" example:"404"`
	Error      string `json:"error" example:"POST_NOT_FOUND"`
	Message    string `json:"message" example:"존재하지 않는 게시글입니다."`
}

// MessageResponse acknowledges a successful write
type MessageResponse struct {
	Message string `json:"message" example:"성공적으로 등록됐습니다."`
}

// SendError writes an error body and aborts the handler chain
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Error:      code,
		Message:    message,
	})
}

// SendMessage writes a message-only success body
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// SendSuccess writes data as the response body
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
