package metrics

import (
	"context"
	"sync/atomic"
	"time"
)

// Recorder fans metrics out to Sentry and CloudWatch and keeps in-process
// counters for the metrics endpoint. A nil *Recorder is a no-op.
type Recorder struct {
	sentry     *SentryMetrics
	cloudwatch *Client

	requests      atomic.Int64
	analyses      atomic.Int64
	invalidChords atomic.Int64
	chords        atomic.Int64
}

// Snapshot is a point-in-time copy of the in-process counters
type Snapshot struct {
	Requests       int64 `json:"requests"`
	Analyses       int64 `json:"analyses"`
	InvalidInputs  int64 `json:"invalid_inputs"`
	ChordsAnalyzed int64 `json:"chords_analyzed"`
	CloudWatch     bool  `json:"cloudwatch_enabled"`
}

// NewRecorder creates a recorder. cloudwatch may be nil.
func NewRecorder(sentry *SentryMetrics, cloudwatch *Client) *Recorder {
	if sentry == nil {
		sentry = NewSentryMetrics()
	}
	return &Recorder{sentry: sentry, cloudwatch: cloudwatch}
}

// RecordAPIRequest records a completed HTTP request
func (r *Recorder) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if r == nil {
		return
	}
	r.requests.Add(1)
	r.sentry.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	r.cloudwatch.RecordAPIRequest(endpoint, statusCode, duration)
}

// RecordAnalysis records a harmony operation. success is false when the input was rejected.
func (r *Recorder) RecordAnalysis(ctx context.Context, operation string, chordCount int, duration time.Duration, success bool) {
	if r == nil {
		return
	}
	r.analyses.Add(1)
	if success {
		r.chords.Add(int64(chordCount))
	} else {
		r.invalidChords.Add(1)
	}
	r.sentry.RecordAnalysis(ctx, operation, chordCount, duration, success)
	r.cloudwatch.RecordAnalysis(operation, chordCount, duration, success)
}

// RecordVoiceLeading records the issue count of a voice-leading check
func (r *Recorder) RecordVoiceLeading(ctx context.Context, issues int) {
	if r == nil {
		return
	}
	r.sentry.RecordVoiceLeading(ctx, issues)
}

// Snapshot returns the current counters
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return Snapshot{
		Requests:       r.requests.Load(),
		Analyses:       r.analyses.Load(),
		InvalidInputs:  r.invalidChords.Load(),
		ChordsAnalyzed: r.chords.Load(),
		CloudWatch:     r.cloudwatch.Enabled(),
	}
}
