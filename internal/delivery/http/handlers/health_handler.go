package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	log *zap.Logger
	DB  Pinger
}

func NewHealthHandler(log *zap.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{log: log, DB: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Database: "connected"})
}
