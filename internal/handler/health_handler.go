package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/repository"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store   repository.CommentRepository
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store repository.CommentRepository, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
	Comments int               `json:"comments"`
}

// Health handles GET /health - reports the store and how many comments it holds.
// The in-memory store cannot fail, so this always reports healthy.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Services: map[string]string{"store": "healthy"},
		Comments: h.store.Count(c.Request.Context()),
	})
}

// Ready handles GET /ready - readiness check for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness check for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
