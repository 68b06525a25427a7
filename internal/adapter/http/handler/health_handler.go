package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier service.Classifier) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health. The provider is not called so probes stay free.
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	status := "healthy"

	if h.classifier != nil {
		components["provider"] = "ok"
		components["model"] = h.classifier.Model()
	} else {
		components["provider"] = "not configured"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "provider not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
