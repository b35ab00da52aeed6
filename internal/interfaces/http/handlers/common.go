// Package handlers contains the gin HTTP handlers for the public API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// respondError maps err to an HTTP status via its error code and writes the
// standard error body.  Server-side errors are masked with a generic message
// so that internal details never reach the client.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := err.Error()
	if errors.IsServerError(code) {
		message = errors.DefaultMessageForCode(errors.ErrCodeInternal)
		code = errors.ErrCodeInternal
		status = http.StatusInternalServerError
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      string(code),
		Message:   message,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})
}

// bindJSON decodes the request body into dest, converting decode failures
// into a 400 with the standard error body.  Returns false when binding fails.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid request body").WithCause(err))
		return false
	}
	return true
}
