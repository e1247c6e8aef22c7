package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/gin-gonic/gin"
)

// KnowledgeHandler exposes the read-only knowledge base
type KnowledgeHandler struct {
	kb *knowledge.Base
}

func NewKnowledgeHandler(kb *knowledge.Base) *KnowledgeHandler {
	return &KnowledgeHandler{kb: kb}
}

// ListConcepts handles GET /api/v1/knowledge/concepts
func (h *KnowledgeHandler) ListConcepts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"concepts":             h.kb.Concepts(),
		"pedagogical_sequence": h.kb.PedagogicalSequence(),
	})
}

// GetConcept handles GET /api/v1/knowledge/concepts/:name
func (h *KnowledgeHandler) GetConcept(c *gin.Context) {
	name := c.Param("name")
	concept, ok := h.kb.Concept(name)
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("concept %q not found", name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"concept": concept,
		"related": h.kb.RelatedConcepts(name),
	})
}

// ListProgressions handles GET /api/v1/knowledge/progressions
func (h *KnowledgeHandler) ListProgressions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progressions": h.kb.Progressions()})
}

// ListExercises handles GET /api/v1/knowledge/exercises?level=&category=.
// A missing or out-of-range level falls back to level 1.
func (h *KnowledgeHandler) ListExercises(c *gin.Context) {
	level := 1
	if raw := c.Query("level"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid level %q", raw))
			return
		}
		level = n
	}
	category := c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"level":     level,
		"category":  category,
		"exercises": h.kb.Exercises(level, category),
	})
}
