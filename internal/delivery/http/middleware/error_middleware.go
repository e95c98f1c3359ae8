package middleware

import (
	"errors"
	"net/http"

	"europlast-backend/internal/delivery/http/response"
	"europlast-backend/pkg/apperror"
	"europlast-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// internal details stay in the server log
		logger.Log.Error("Internal server error",
			"request_id", GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
