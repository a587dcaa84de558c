package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// Health reports whether the database is reachable.
type Health struct {
	storage model.Pinger
	logger  *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(storage model.Pinger, logger *logger.Logger) *Health {
	return &Health{storage: storage, logger: logger}
}

func (h *Health) Check(c *gin.Context) {
	if err := h.storage.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health handler: database ping failed",
			"error", err.Error())
		c.JSON(http.StatusServiceUnavailable, apierrors.Body{ErrorMsg: "Database Unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
