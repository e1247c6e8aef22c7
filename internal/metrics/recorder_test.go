package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderCounters(t *testing.T) {
	cw, err := NewClient(context.Background(), "test", false)
	assert.NoError(t, err)
	assert.False(t, cw.Enabled())

	r := NewRecorder(nil, cw)
	ctx := context.Background()

	r.RecordAPIRequest(ctx, "/api/v1/analyze/progression", 200, time.Millisecond)
	r.RecordAnalysis(ctx, "analyze_progression", 3, time.Millisecond, true)
	r.RecordAnalysis(ctx, "analyze_progression", 2, time.Millisecond, false)
	r.RecordVoiceLeading(ctx, 1)

	snap := r.Snapshot()
	assert.Equal(t, int64(1), snap.Requests)
	assert.Equal(t, int64(2), snap.Analyses)
	assert.Equal(t, int64(1), snap.InvalidInputs)
	assert.Equal(t, int64(3), snap.ChordsAnalyzed)
	assert.False(t, snap.CloudWatch)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	ctx := context.Background()

	assert.NotPanics(t, func() {
		r.RecordAPIRequest(ctx, "/health", 200, time.Millisecond)
		r.RecordAnalysis(ctx, "chord_detail", 1, time.Millisecond, true)
		r.RecordVoiceLeading(ctx, 0)
	})
	assert.Equal(t, Snapshot{}, r.Snapshot())
}

func TestBoolToString(t *testing.T) {
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
}
