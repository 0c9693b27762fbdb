package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/logger"
)

// HandleError writes the canonical error envelope {"error": {...}} and logs
// the failure. Unknown error types never leak their text to the client.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxError(c, "request failed", "domain", appErr.Domain, "code", appErr.Code, "error", appErr)
		} else {
			logger.CtxWarn(c, "request rejected", "domain", appErr.Domain, "code", appErr.Code, "message", appErr.Message)
		}
		c.AbortWithStatusJSON(appErr.HTTPCode, gin.H{"error": appErr})
		return
	}

	logger.CtxError(c, "unhandled error", "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": &AppError{Code: CodeInternal, Message: "Internal server error."},
	})
}
