package services

import (
	"context"
	"time"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/logger"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
)

// Operation names used in logs and metrics
const (
	OpAnalyzeProgression = "analyze_progression"
	OpChordDetail        = "chord_detail"
	OpReharmonize        = "reharmonize"
	OpImprovisationGuide = "improvisation_guide"
	OpVoiceLeading       = "voice_leading"
	OpSubstitutions      = "substitutions"
)

// tracker times an engine call and reports it to the logger and metrics
type tracker struct {
	metrics *metrics.Recorder
}

// analyze runs the engine over a progression. Parse errors are returned unchanged.
func (t tracker) analyze(ctx context.Context, operation string, symbols []string, key harmony.PitchClass) (*harmony.ProgressionAnalysis, error) {
	start := time.Now()
	analysis, err := harmony.Analyze(symbols, key)
	t.finish(ctx, operation, len(symbols), start, err)
	return analysis, err
}

func (t tracker) finish(ctx context.Context, operation string, chordCount int, start time.Time, err error) {
	duration := time.Since(start)
	t.metrics.RecordAnalysis(ctx, operation, chordCount, duration, err == nil)

	if err != nil {
		logger.LogRejectedInput(operation, err, logger.Fields{"chord_count": chordCount})
		return
	}
	logger.LogAnalysis(ctx, operation, chordCount, duration, nil)
}

func hasTwoFiveOne(functions []harmony.HarmonicFunction) bool {
	for i := 0; i+2 < len(functions); i++ {
		if functions[i] == harmony.FunctionSubdominant &&
			functions[i+1] == harmony.FunctionDominant &&
			functions[i+2] == harmony.FunctionTonic {
			return true
		}
	}
	return false
}

func countFunction(functions []harmony.HarmonicFunction, f harmony.HarmonicFunction) int {
	n := 0
	for _, fn := range functions {
		if fn == f {
			n++
		}
	}
	return n
}
