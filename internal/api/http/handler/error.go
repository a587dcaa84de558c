package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

// handleError writes the client-facing status and message of err. Errors that
// are not API errors are reported as 500 with the fallback message.
func handleError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	if apiErr, ok := apierrors.As(err); ok {
		c.JSON(apiErr.Status, apiErr.Body())
		return
	}

	c.JSON(http.StatusInternalServerError, apierrors.Body{ErrorMsg: fallback})
}

// logFailure logs API errors at Info and everything else at Error.
func logFailure(l *logger.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err.Error())
	if _, ok := apierrors.As(err); ok {
		l.Info(msg, args...)
		return
	}
	l.Error(msg, args...)
}
