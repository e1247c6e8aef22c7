package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/eharmony-api/internal/config"
	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/models"
	"github.com/Conceptual-Machines/eharmony-api/internal/services"
	"github.com/gin-gonic/gin"
)

// HarmonyHandler serves the analysis, reharmonization and improvisation endpoints
type HarmonyHandler struct {
	cfg           *config.Config
	harmony       *services.HarmonyService
	reharmonizer  *services.ReharmonizationService
	improvisation *services.ImprovisationService
}

func NewHarmonyHandler(
	cfg *config.Config,
	harmonyService *services.HarmonyService,
	reharmonizer *services.ReharmonizationService,
	improvisation *services.ImprovisationService,
) *HarmonyHandler {
	return &HarmonyHandler{
		cfg:           cfg,
		harmony:       harmonyService,
		reharmonizer:  reharmonizer,
		improvisation: improvisation,
	}
}

// FullAnalysis bundles every view of one progression
type FullAnalysis struct {
	Analysis        *services.ProgressionReport      `json:"analysis"`
	Reharmonization *services.ReharmonizationReport  `json:"reharmonization"`
	Improvisation   *services.ImprovisationGuide     `json:"improvisation"`
	Chords          map[string]*services.ChordDetail `json:"chords"`
}

// key parses the requested key, falling back to the configured default
func (h *HarmonyHandler) key(name string) (harmony.PitchClass, error) {
	if name == "" {
		name = h.cfg.DefaultKey
	}
	return harmony.ParsePitchClass(name)
}

// bindProgression binds the body and checks the length limit and key.
// It writes the error response itself and returns false on failure.
func (h *HarmonyHandler) bindProgression(c *gin.Context, req *models.ProgressionRequest) (harmony.PitchClass, bool) {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	if err := checkLength(h.cfg.MaxProgressionLength, req.Chords); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	key, err := h.key(req.Key)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return key, true
}

// AnalyzeProgression handles POST /api/v1/analyze/progression
func (h *HarmonyHandler) AnalyzeProgression(c *gin.Context) {
	var req models.ProgressionRequest
	key, ok := h.bindProgression(c, &req)
	if !ok {
		return
	}

	report, err := h.harmony.AnalyzeProgression(c.Request.Context(), req.Chords, key, req.Context)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AnalyzeChord handles POST /api/v1/analyze/chord
func (h *HarmonyHandler) AnalyzeChord(c *gin.Context) {
	var req models.ChordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	key, err := h.key(req.Key)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	detail, err := h.harmony.ChordDetail(c.Request.Context(), req.Chord, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CheckVoiceLeading handles POST /api/v1/voice-leading/check
func (h *HarmonyHandler) CheckVoiceLeading(c *gin.Context) {
	var req models.VoiceLeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := checkLength(h.cfg.MaxProgressionLength, req.Chords); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	report, err := h.harmony.CheckVoiceLeading(c.Request.Context(), req.Chords)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Substitutions handles POST /api/v1/substitutions
func (h *HarmonyHandler) Substitutions(c *gin.Context) {
	var req models.ProgressionRequest
	key, ok := h.bindProgression(c, &req)
	if !ok {
		return
	}

	subs, err := h.harmony.Substitutions(c.Request.Context(), req.Chords, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":           key,
		"substitutions": subs,
	})
}

// Reharmonize handles POST /api/v1/reharmonize
func (h *HarmonyHandler) Reharmonize(c *gin.Context) {
	var req models.ReharmonizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := checkLength(h.cfg.MaxProgressionLength, req.Chords); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	key, err := h.key(req.Key)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	report, err := h.reharmonizer.Suggest(c.Request.Context(), req.Chords, key, req.Style)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ImprovisationGuide handles POST /api/v1/improvisation/guide
func (h *HarmonyHandler) ImprovisationGuide(c *gin.Context) {
	var req models.ProgressionRequest
	key, ok := h.bindProgression(c, &req)
	if !ok {
		return
	}

	guide, err := h.improvisation.Guide(c.Request.Context(), req.Chords, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// FullAnalysisDemo handles POST /api/v1/demo/full-analysis
func (h *HarmonyHandler) FullAnalysisDemo(c *gin.Context) {
	var req models.ProgressionRequest
	key, ok := h.bindProgression(c, &req)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	report, err := h.harmony.AnalyzeProgression(ctx, req.Chords, key, req.Context)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	reharm, err := h.reharmonizer.Suggest(ctx, req.Chords, key, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	guide, err := h.improvisation.Guide(ctx, req.Chords, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details := make(map[string]*services.ChordDetail, len(req.Chords))
	for _, symbol := range req.Chords {
		if _, seen := details[symbol]; seen {
			continue
		}
		detail, err := h.harmony.ChordDetail(ctx, symbol, key)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		details[symbol] = detail
	}

	c.JSON(http.StatusOK, FullAnalysis{
		Analysis:        report,
		Reharmonization: reharm,
		Improvisation:   guide,
		Chords:          details,
	})
}
