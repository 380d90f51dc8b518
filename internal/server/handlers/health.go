package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	logger           *zap.Logger
	startTime        time.Time
	apiKeyConfigured bool
}

func NewHealthHandler(logger *zap.Logger, apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{
		logger:           logger,
		startTime:        time.Now(),
		apiKeyConfigured: apiKeyConfigured,
	}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startTime).String(),
	})
}

// Readiness stays 200 without an API key, every fetch would then end in
// the provider's 401, so it only reports "degraded".
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := "ok"
	if !h.apiKeyConfigured {
		status = "degraded"
		h.logger.Debug("Readiness check without API key")
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: status,
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
