package handlers

import (
	"errors"
	"net/http"

	"chirp/services"

	"github.com/gin-gonic/gin"
)

const (
	ErrorCodeValidation   = "validation_error"
	ErrorCodeNotFound     = "not_found"
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeRateLimited  = "rate_limited"
	ErrorCodeInternal     = "internal_error"
)

func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// writeServiceError переводит ошибки конвейеров в HTTP-ответы. Конкретные
// виды (валидация, лимит, not found) отдаются со своим кодом и причиной,
// все остальное деградирует до generic internal_error.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		JSONError(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "Authentication required")
	case errors.As(err, &validationErr):
		JSONError(c, http.StatusBadRequest, ErrorCodeValidation, validationErr.Reason)
	case errors.Is(err, services.ErrRateLimited):
		JSONError(c, http.StatusTooManyRequests, ErrorCodeRateLimited, "Too many requests")
	case errors.Is(err, services.ErrAuthorNotFound):
		JSONError(c, http.StatusNotFound, ErrorCodeNotFound, "Author not found")
	case errors.Is(err, services.ErrUserNotFound):
		JSONError(c, http.StatusNotFound, ErrorCodeNotFound, "User not found")
	case errors.Is(err, services.ErrPostNotFound):
		JSONError(c, http.StatusNotFound, ErrorCodeNotFound, "Post not found")
	default:
		JSONError(c, http.StatusInternalServerError, ErrorCodeInternal, "Internal error")
	}
}
