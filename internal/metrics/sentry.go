package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // no-op until sentry.Init has run
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordAnalysis records one harmony operation (progression analysis, chord detail, ...)
func (m *SentryMetrics) RecordAnalysis(ctx context.Context, operation string, chordCount int, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("harmony.operation", operation)
		transaction.SetData("harmony.chord_count", chordCount)
	}

	span := sentry.StartSpan(ctx, "harmony."+operation)
	defer span.Finish()

	span.SetTag("success", fmt.Sprintf("%t", success))
	span.SetData("chord_count", chordCount)
	span.SetData("duration_ms", duration.Milliseconds())

	// invalid chord input is a client error, not a failed span
	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInvalidArgument
	}

	span.Description = fmt.Sprintf("Harmony %s: %d chords", operation, chordCount)
}

// RecordVoiceLeading records how many root-motion issues a progression produced
func (m *SentryMetrics) RecordVoiceLeading(ctx context.Context, issues int) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "harmony.voice_leading")
	span.SetData("issues", issues)
	span.SetTag("valid", fmt.Sprintf("%t", issues == 0))
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
