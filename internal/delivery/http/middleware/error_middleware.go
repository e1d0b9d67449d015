package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"sportloods-backend/internal/delivery/http/response"
	"sportloods-backend/pkg/apperror"
	"sportloods-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgUnexpected = apperror.MsgUnexpected

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// The wrapped cause may hold transport credentials or hostnames:
			// it goes to the operator log only.
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					slog.String("kind", string(appErr.Kind)),
					slog.String("request_id", requestID),
					slog.String("path", c.FullPath()),
					slog.String("error", appErr.Err.Error()))
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Internal Server Error",
			slog.String("request_id", requestID),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		response.Error(c, http.StatusInternalServerError, msgUnexpected)
	}
}
