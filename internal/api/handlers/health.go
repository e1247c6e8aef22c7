package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	kb *knowledge.Base
}

func NewHealthHandler(kb *knowledge.Base) *HealthHandler {
	return &HealthHandler{kb: kb}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.kb == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":         "unhealthy",
			"knowledge_base": gin.H{"status": "missing"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"knowledge_base": gin.H{
			"status":   "loaded",
			"concepts": len(h.kb.Concepts()),
		},
	})
}
