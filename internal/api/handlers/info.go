package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/gin-gonic/gin"
)

// Info handles GET / with a summary of the service and its vocabulary
func Info(version string) gin.HandlerFunc {
	qualities := harmony.Qualities()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "eharmony-api",
			"description": "Harmonic analysis, reharmonization and improvisation guidance for chord progressions",
			"version":     version,
			"qualities":   qualities,
			"endpoints": []string{
				"POST /api/v1/analyze/progression",
				"POST /api/v1/analyze/chord",
				"POST /api/v1/voice-leading/check",
				"POST /api/v1/substitutions",
				"POST /api/v1/reharmonize",
				"POST /api/v1/improvisation/guide",
				"POST /api/v1/demo/full-analysis",
				"GET /api/v1/knowledge/concepts",
				"GET /api/v1/knowledge/concepts/:name",
				"GET /api/v1/knowledge/progressions",
				"GET /api/v1/knowledge/exercises",
			},
		})
	}
}
