// internal/common/errors/http.go
package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusByCode maps internal error codes to HTTP statuses. Codes not listed
// answer 500.
var statusByCode = map[ErrorCode]int{
	ErrCodeJobNotFound:         http.StatusNotFound,
	ErrCodeApplicationNotFound: http.StatusNotFound,

	ErrCodeJobValidationFailed:         http.StatusUnprocessableEntity,
	ErrCodeApplicationValidationFailed: http.StatusUnprocessableEntity,
	ErrCodeSignupValidationFailed:      http.StatusUnprocessableEntity,
	ErrCodeInvalidFilterFormat:         http.StatusBadRequest,
	ErrCodeInvalidStatusTransition:     http.StatusBadRequest,

	ErrCodeDuplicateApplication: http.StatusConflict,
	ErrCodeEmailTaken:           http.StatusConflict,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeSessionExpired:     http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbiddenRole:      http.StatusForbidden,

	ErrCodeDatabaseConnectionFailed: http.StatusServiceUnavailable,
	ErrCodeSearchQueryFailed:        http.StatusBadGateway,
}

// HTTPStatus resolves the response status for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Respond writes a structured error body for any error. Non-standard errors
// are normalized to INTERNAL_ERROR so no raw error text leaks to clients.
func Respond(c *gin.Context, err error) {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		stdErr = Wrap(ErrCodeInternal, "unexpected error", err)
	}

	body := gin.H{
		"error": gin.H{
			"code":    stdErr.Code,
			"message": stdErr.Message,
		},
	}
	if len(stdErr.Metadata) > 0 {
		body["error"].(gin.H)["metadata"] = stdErr.Metadata
	}

	c.AbortWithStatusJSON(HTTPStatus(stdErr.Code), body)
}
