// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	xerrors "fleetflow-service/internal/pkg/errors"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Paginated wraps list payloads with paging metadata.
type Paginated struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"total_pages"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	c.JSON(code, resp)
}

// statusByKind maps domain error kinds to HTTP statuses. The mapping lives
// only here so services never reason about HTTP.
var statusByKind = map[xerrors.Kind]int{
	xerrors.KindNotFound:           http.StatusNotFound,
	xerrors.KindInvalidInput:       http.StatusBadRequest,
	xerrors.KindInvalidTransition:  http.StatusConflict,
	xerrors.KindPreconditionFailed: http.StatusUnprocessableEntity,
	xerrors.KindConflict:           http.StatusConflict,
	xerrors.KindUnauthorized:       http.StatusUnauthorized,
	xerrors.KindForbidden:          http.StatusForbidden,
	xerrors.KindRateLimited:        http.StatusTooManyRequests,
	xerrors.KindInternal:           http.StatusInternalServerError,
}

// FromError resolves the HTTP status from the error's kind and sends the
// standard envelope. Internal errors are masked with a generic message.
func FromError(c *gin.Context, err error) {
	kind := xerrors.KindOf(err)
	code, ok := statusByKind[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	if kind == xerrors.KindInternal {
		Error(c, code, "internal server error", nil)
		return
	}
	Error(c, code, err.Error(), nil)
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
