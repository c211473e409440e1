package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health and root info endpoints.
type HealthHandler struct {
	mgr     *database.Manager
	baseURL string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(mgr *database.Manager, baseURL string) *HealthHandler {
	return &HealthHandler{mgr: mgr, baseURL: baseURL}
}

// GetHealth responds with service and store connection status.
// GET /health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"store": gin.H{
			"state": h.mgr.State().String(),
		},
	})
}

// GetInfo is the root informational endpoint.
// GET /
func (h *HealthHandler) GetInfo(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":   "Tim Sach Nha Be API",
		"serverUrl": h.baseURL,
		"apiDocs":   h.baseURL + "/api-docs",
	})
}
