package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/pkg/apperror"
	"matchdb-jobs-service/pkg/logger"
)

// ErrorHandler maps errors attached to the context onto the response
// envelope. AppErrors carry their own status; anything else is an unexpected
// fault that must not leak details to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
