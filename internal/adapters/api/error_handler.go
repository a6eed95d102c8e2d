package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errorspkg "leadmail.app/pkg/errors"
)

const serverErrorMessage = "Server error"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := errorStatus(err)
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, serverErrorMessage
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.MissingPlaceholderError:
		return http.StatusUnprocessableEntity, appErr.Message
	case errorspkg.RateLimitError:
		return http.StatusTooManyRequests, appErr.Message
	case errorspkg.ExternalAPIError, errorspkg.EmailError:
		return http.StatusServiceUnavailable, "External service unavailable"
	default:
		return http.StatusInternalServerError, serverErrorMessage
	}
}
