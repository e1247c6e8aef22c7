package api

import (
	"github.com/Conceptual-Machines/eharmony-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/eharmony-api/internal/api/middleware"
	"github.com/Conceptual-Machines/eharmony-api/internal/config"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
	"github.com/Conceptual-Machines/eharmony-api/internal/services"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, version string, kb *knowledge.Base, rec *metrics.Recorder) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(rec))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/", handlers.Info(version))

	// Health check
	healthHandler := handlers.NewHealthHandler(kb)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, rec)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	harmonyHandler := handlers.NewHarmonyHandler(
		cfg,
		services.NewHarmonyService(kb, rec),
		services.NewReharmonizationService(kb, rec),
		services.NewImprovisationService(kb, rec),
	)
	knowledgeHandler := handlers.NewKnowledgeHandler(kb)

	v1 := router.Group("/api/v1")
	{
		// Analysis
		v1.POST("/analyze/progression", harmonyHandler.AnalyzeProgression)
		v1.POST("/analyze/chord", harmonyHandler.AnalyzeChord)
		v1.POST("/voice-leading/check", harmonyHandler.CheckVoiceLeading)
		v1.POST("/substitutions", harmonyHandler.Substitutions)

		// Practice
		v1.POST("/reharmonize", harmonyHandler.Reharmonize)
		v1.POST("/improvisation/guide", harmonyHandler.ImprovisationGuide)
		v1.POST("/demo/full-analysis", harmonyHandler.FullAnalysisDemo)

		// Knowledge base (read-only)
		v1.GET("/knowledge/concepts", knowledgeHandler.ListConcepts)
		v1.GET("/knowledge/concepts/:name", knowledgeHandler.GetConcept)
		v1.GET("/knowledge/progressions", knowledgeHandler.ListProgressions)
		v1.GET("/knowledge/exercises", knowledgeHandler.ListExercises)
	}

	return router
}
