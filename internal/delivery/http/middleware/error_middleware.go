package middleware

import (
	"errors"
	"net/http"

	"local-jobs-backend/internal/delivery/http/response"
	"local-jobs-backend/pkg/apperror"
	"local-jobs-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed",
						"status", appErr.Code,
						"message", appErr.Message,
						"error", appErr.Err,
						"request_id", c.GetString("RequestID"))
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Internal server error",
					"error", err,
					"request_id", c.GetString("RequestID"))
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
