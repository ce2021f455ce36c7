package middleware

import (
	"errors"
	"net/http"

	"go-recruitment-chatbot/internal/delivery/http/response"
	"go-recruitment-chatbot/pkg/apperror"
	"go-recruitment-chatbot/pkg/logger"

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
					logger.Log.Error("request failed",
						"status", appErr.Code, "error", appErr.Err,
						"request_id", c.GetString("RequestID"))
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients; log
				// server-side and answer with a generic message.
				logger.Log.Error("unexpected error",
					"error", err, "request_id", c.GetString("RequestID"))
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
