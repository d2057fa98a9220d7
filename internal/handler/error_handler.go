package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"community-board-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	// Check for custom AppError
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Service error",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.String("details", appErr.Details),
				zap.String("path", c.Request.URL.Path))
		} else {
			logger.Debug("Request rejected",
				zap.String("code", appErr.Code),
				zap.String("details", appErr.Details))
		}
		message := appErr.Message
		if statusCode == http.StatusInternalServerError {
			// storage details stay in the log
			message = response.MsgInternal
		}
		response.SendError(c, statusCode, appErr.Code, message)
		return
	}

	// Default to internal server error
	logger.Error("Unhandled error type", zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, response.MsgInternal)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound, response.ErrCodePostNotFound:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseID reads a non-negative integer path parameter. Anything else means
// the route does not exist, so callers answer 404 NOT_FOUND.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
