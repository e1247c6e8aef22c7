package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
)

var keyC = harmony.MustPitchClass("C")

func newTestKB(t *testing.T) *knowledge.Base {
	t.Helper()
	kb, err := knowledge.Load()
	require.NoError(t, err)
	return kb
}

func TestAnalyzeProgressionTwoFiveOne(t *testing.T) {
	rec := metrics.NewRecorder(nil, nil)
	svc := NewHarmonyService(newTestKB(t), rec)

	report, err := svc.AnalyzeProgression(context.Background(), []string{"Dm7", "G7", "Cmaj7"}, keyC, "")
	require.NoError(t, err)

	assert.Equal(t, ContextTonal, report.Context)
	require.Len(t, report.Chords, 3)
	assert.Equal(t, "ii", report.Chords[0].RomanNumeral)
	assert.Equal(t, harmony.FunctionDominant, report.Chords[1].Function)
	assert.Equal(t, "Volume 1 - Seventh Chords (p. 71-85)", report.Chords[2].Pedagogy.VolumeReference)
	assert.NotEmpty(t, report.Chords[1].TensionTheory.Explanations[harmony.TensionSharp11])
	assert.NotEmpty(t, report.Chords[0].ContextNote)

	// three seventh chords, no extensions, no substitutes
	assert.Equal(t, Difficulty{Level: DifficultyIntermediate, Points: 3}, report.Difficulty)
	assert.Contains(t, report.Suggestions.StyleSuggestions[0], "jazz")
	assert.Contains(t, report.Suggestions.Exercises, "Practice the inversions of the seventh chords in this progression")
	assert.NotContains(t, report.Suggestions.Exercises, "Study secondary dominants in Volume 2")

	require.Len(t, report.Suggestions.HarmonicEnrichment, 1)
	assert.Equal(t, "G7", report.Suggestions.HarmonicEnrichment[0].Original)

	names := []string{}
	for _, c := range report.RelatedConcepts {
		names = append(names, c.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "secondary_dominants")

	snap := rec.Snapshot()
	assert.Equal(t, int64(1), snap.Analyses)
	assert.Equal(t, int64(3), snap.ChordsAnalyzed)
}

func TestAnalyzeProgressionModalAndAdvanced(t *testing.T) {
	svc := NewHarmonyService(newTestKB(t), nil)

	report, err := svc.AnalyzeProgression(context.Background(), []string{"C", "Bb", "Eb9", "A7"}, keyC, ContextModal)
	require.NoError(t, err)

	// Bb and Eb9 are substitutes (+4), Eb has a 9 (+1), A7 is a seventh (+1)
	assert.Equal(t, DifficultyAdvanced, report.Difficulty.Level)
	assert.Equal(t, 6, report.Difficulty.Points)
	assert.Contains(t, report.Suggestions.StyleSuggestions, "This progression has modal traits. See Volume 3 on modal harmony.")
	assert.Contains(t, report.Suggestions.Exercises, "Study secondary dominants in Volume 2")
	assert.Equal(t, ContextModal, report.Context)
}

func TestAnalyzeProgressionRejectsInvalidChord(t *testing.T) {
	rec := metrics.NewRecorder(nil, nil)
	svc := NewHarmonyService(newTestKB(t), rec)

	report, err := svc.AnalyzeProgression(context.Background(), []string{"C", "H7"}, keyC, "")
	assert.ErrorIs(t, err, harmony.ErrInvalidChordSymbol)
	assert.Nil(t, report)
	assert.Equal(t, int64(1), rec.Snapshot().InvalidInputs)
}

func TestChordDetail(t *testing.T) {
	svc := NewHarmonyService(newTestKB(t), nil)

	detail, err := svc.ChordDetail(context.Background(), "G7", keyC)
	require.NoError(t, err)

	assert.Equal(t, "V", detail.RomanNumeral)
	assert.Equal(t, []string{"G", "B", "D", "F"}, detail.Notes)
	assert.Equal(t, []string{"G7", "G7/B", "G7/D", "G7/F"}, detail.Inversions)
	assert.Equal(t, []int{67, 71, 74, 77}, detail.MIDINotes)
	assert.Equal(t, []string{"mixolydian", "altered"}, detail.Scales)
	assert.Len(t, detail.PracticeOrder, 5)
	assert.Contains(t, detail.Pedagogy.MusicalExamples, "Blue Bossa")
	require.Len(t, detail.Substitutions, 1)
	assert.Equal(t, "C#7", detail.Substitutions[0].Symbol)

	_, err = svc.ChordDetail(context.Background(), "Q", keyC)
	assert.ErrorIs(t, err, harmony.ErrInvalidChordSymbol)
}

func TestChordDetailWrittenTensions(t *testing.T) {
	svc := NewHarmonyService(newTestKB(t), nil)

	detail, err := svc.ChordDetail(context.Background(), "G7#11", keyC)
	require.NoError(t, err)
	assert.Contains(t, detail.PracticeSuggestions, "Voice the written #11 as the top note")
	assert.Len(t, detail.PracticeSuggestions, 5)

	// a written tension the quality does not offer gets no voicing hint
	detail, err = svc.ChordDetail(context.Background(), "Cmaj7#11", keyC)
	require.NoError(t, err)
	assert.Len(t, detail.PracticeSuggestions, 4)
}

func TestReharmonizationSuggest(t *testing.T) {
	svc := NewReharmonizationService(newTestKB(t), nil)

	report, err := svc.Suggest(context.Background(), []string{"C", "Am", "Dm", "G7", "C"}, keyC, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, report.Style)

	require.Len(t, report.Alternatives, 2)
	assert.Equal(t, []string{"C", "Am", "Dm", "C#7", "C"}, report.Alternatives[0].Progression)
	assert.Equal(t, []string{"C", "E7", "Am", "A7", "Dm", "G7", "G7", "C"}, report.Alternatives[1].Progression)

	positions := []int{}
	for _, s := range report.Suggestions {
		positions = append(positions, s.Position)
		assert.NotEmpty(t, s.FunctionApproach)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, positions)
}

func TestReharmonizationAlternativeStyles(t *testing.T) {
	svc := NewReharmonizationService(newTestKB(t), nil)
	progression := []string{"C", "Am", "Dm", "G7", "C"}

	report, err := svc.Suggest(context.Background(), progression, keyC, "")
	require.NoError(t, err)
	require.Len(t, report.Alternatives, 2)
	assert.Equal(t, "jazz_sophisticated", report.Alternatives[0].Style)
	assert.Equal(t, "jazz_traditional", report.Alternatives[1].Style)

	// the requested style prefixes the alternative styles
	report, err = svc.Suggest(context.Background(), progression, keyC, "bossa")
	require.NoError(t, err)
	require.Len(t, report.Alternatives, 2)
	assert.Equal(t, "bossa_sophisticated", report.Alternatives[0].Style)
	assert.Equal(t, "bossa_traditional", report.Alternatives[1].Style)
}

func TestReharmonizationSkipsUnchangedAlternatives(t *testing.T) {
	svc := NewReharmonizationService(newTestKB(t), nil)

	report, err := svc.Suggest(context.Background(), []string{"Dm7", "Cmaj7"}, keyC, "bossa")
	require.NoError(t, err)
	assert.Empty(t, report.Alternatives)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, "bossa", report.Style)
}

func TestImprovisationGuide(t *testing.T) {
	svc := NewImprovisationService(newTestKB(t), nil)

	guide, err := svc.Guide(context.Background(), []string{"Dm7", "G7", "Cmaj7"}, keyC)
	require.NoError(t, err)
	require.Len(t, guide.ChordScales, 3)

	dm := guide.ChordScales[0]
	assert.Equal(t, "dorian", dm.PrimaryScale)
	assert.Equal(t, harmony.PrimaryScale(harmony.QualityMinor7), dm.PrimaryScale)
	assert.Equal(t, []string{"aeolian"}, dm.AlternativeScales)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "B", "C"}, dm.ScaleNotes)
	assert.Equal(t, []string{"D", "F", "C"}, dm.StrongNotes)
	assert.Empty(t, dm.AvoidNotes)

	assert.Equal(t, []string{"F"}, guide.ChordScales[2].AvoidNotes)

	g := guide.TargetNotes[1]
	assert.Equal(t, []string{"B", "F"}, g.PrimaryTargets)
	assert.Equal(t, []string{"C", "E", "B"}, g.ResolutionNotes)
	assert.Equal(t, "A#", g.Approaches[0].ChromaticBelow)
	assert.Equal(t, []string{"A", "C#"}, g.Approaches[0].DiatonicApproaches)
	assert.Empty(t, guide.TargetNotes[2].ResolutionNotes)

	require.Len(t, guide.Strategies, 2)
	assert.Equal(t, "ii-V-I licks", guide.Strategies[0].Name)
	assert.Len(t, guide.Exercises, 3)
}

func TestImprovisationGuideModal(t *testing.T) {
	svc := NewImprovisationService(newTestKB(t), nil)

	guide, err := svc.Guide(context.Background(), []string{"C", "Bb", "C", "Bb"}, keyC)
	require.NoError(t, err)

	names := []string{}
	for _, s := range guide.Strategies {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Modal approach", "Chord tones"}, names)
}

func TestStrongNotes(t *testing.T) {
	tests := []struct {
		symbol   string
		expected []string
	}{
		{"C", []string{"C", "E"}},
		{"Am", []string{"A", "C"}},
		{"Csus4", []string{"C"}},
		{"Bm7b5", []string{"B", "D", "A"}},
		{"Cmaj7", []string{"C", "E", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got := harmony.PitchClassNames(StrongNotes(harmony.MustParse(tt.symbol)))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheckVoiceLeading(t *testing.T) {
	svc := NewHarmonyService(newTestKB(t), metrics.NewRecorder(nil, nil))

	report, err := svc.CheckVoiceLeading(context.Background(), []string{"C", "G#"})
	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, 8, report.Issues[0].Distance)

	_, err = svc.CheckVoiceLeading(context.Background(), []string{"C", "H7"})
	assert.ErrorIs(t, err, harmony.ErrInvalidChordSymbol)
}

func TestSubstitutions(t *testing.T) {
	svc := NewHarmonyService(newTestKB(t), nil)

	subs, err := svc.Substitutions(context.Background(), []string{"Dm7", "G7", "Cmaj7"}, keyC)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "G7", subs[1].Symbol)
	require.NotEmpty(t, subs[1].Substitutions)
	assert.Equal(t, harmony.RuleTritone, subs[1].Substitutions[0].Rule)
	assert.Equal(t, "C#7", subs[1].Substitutions[0].Symbol)
}

func TestImprovisationGuideTriadFallsBackToChromatic(t *testing.T) {
	svc := NewImprovisationService(newTestKB(t), nil)

	guide, err := svc.Guide(context.Background(), []string{"C", "F"}, keyC)
	require.NoError(t, err)
	require.Len(t, guide.ChordScales, 2)
	assert.Equal(t, harmony.ScaleChromatic, guide.ChordScales[0].PrimaryScale)
	assert.Empty(t, guide.ChordScales[0].AlternativeScales)
	assert.Len(t, guide.ChordScales[0].ScaleNotes, 12)
}
