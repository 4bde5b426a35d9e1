package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hedamo/transparency_api/internal/utils"
	"github.com/hedamo/transparency_api/pkg/insight"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	insight *insight.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(insightClient *insight.Client) *HealthHandler {
	return &HealthHandler{insight: insightClient}
}

// GetHealth responds with service and AI-service status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	aiStatus := "disconnected"
	aiModel := ""
	if h.insight != nil {
		if health, err := h.insight.Health(c.Request.Context()); err == nil {
			aiStatus = health.Status
			aiModel = health.AIModel
		}
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"insight": gin.H{
			"status": aiStatus,
			"model":  aiModel,
		},
	})
}
