package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
)

func TestLoadEmbedded(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)
	require.NotNil(t, kb)

	assert.Contains(t, kb.Concepts(), "secondary_dominants")
	assert.IsIncreasing(t, kb.Concepts())
	assert.Len(t, kb.Progressions(), 3)
	assert.NotEmpty(t, kb.PedagogicalSequence())
}

func TestConceptLookup(t *testing.T) {
	kb := MustLoad()

	c, ok := kb.Concept("secondary_dominants")
	require.True(t, ok)
	assert.Equal(t, 2, c.Volume)
	assert.Equal(t, "p. 26-45", c.PageReference)
	assert.Contains(t, c.Examples, "V/ii = A7 -> Dm")

	_, ok = kb.Concept("counterpoint")
	assert.False(t, ok)
}

func TestRelatedConceptsSkipsUndefined(t *testing.T) {
	kb := MustLoad()

	// dominant_substitutes only points at concepts that are not defined
	assert.Empty(t, kb.RelatedConcepts("dominant_substitutes"))
	assert.Empty(t, kb.RelatedConcepts("counterpoint"))

	related := kb.RelatedConcepts("triads")
	names := make([]string, len(related))
	for i, c := range related {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"intervals", "inversions", "harmonic_field"}, names)
}

func TestExercises(t *testing.T) {
	kb := MustLoad()

	tests := []struct {
		name     string
		level    int
		category string
		expected int
	}{
		{name: "level one", level: 1, expected: 3},
		{name: "level two", level: 2, expected: 2},
		{name: "level three filtered", level: 3, category: "reharmonization", expected: 1},
		{name: "unknown category", level: 2, category: "counterpoint", expected: 0},
		{name: "level out of range falls back to one", level: 9, expected: 3},
		{name: "zero falls back to one", level: 0, category: "chord_building", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kb.Exercises(tt.level, tt.category)
			assert.Len(t, got, tt.expected)
			for _, ex := range got {
				if tt.category != "" {
					assert.Equal(t, tt.category, ex.Category)
				}
			}
		})
	}
}

func TestPedagogyLookups(t *testing.T) {
	kb := MustLoad()

	notes := kb.QualityNotes(harmony.QualityMajor7)
	assert.Equal(t, "Volume 1 - Seventh Chords (p. 71-85)", notes.VolumeReference)
	assert.Contains(t, notes.MusicalExamples, "Corcovado")
	assert.Len(t, notes.TensionTips, 3)

	fallback := kb.QualityNotes(harmony.QualitySuspended4)
	assert.Equal(t, "Practice it in different inversions", fallback.Approach)

	assert.Equal(t, "Volume 2 - Substitutes (p. 46-60)",
		kb.VolumeReference(harmony.QualitySuspended2, harmony.FunctionSubstitute))
	assert.Equal(t, "Volume 1 - Fundamentals",
		kb.VolumeReference(harmony.QualitySuspended2, harmony.FunctionTonic))

	assert.Contains(t, kb.TensionExplanation(harmony.TensionSharp11), "lydian")
	assert.Contains(t, kb.FunctionApproach(harmony.FunctionDominant), "resolution")
	assert.Equal(t, "Analyze the harmonic function before substituting",
		kb.FunctionApproach(harmony.FunctionSubstitute))
	assert.NotEmpty(t, kb.ContextNote("modal"))
	assert.Empty(t, kb.ContextNote("atonal"))
}

func TestLoadFromRejectsDuplicateConcepts(t *testing.T) {
	src := EmbeddedSources()
	src.Concepts = []byte(`
concepts:
  - name: intervals
    title: Intervals
  - name: intervals
    title: Intervals again
`)

	_, err := LoadFrom(src)
	assert.ErrorIs(t, err, ErrDuplicateConcept)
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	src := EmbeddedSources()
	src.Exercises = []byte("exercises: [level: {")

	_, err := LoadFrom(src)
	assert.Error(t, err)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	kb := MustLoad()

	seq := kb.PedagogicalSequence()
	seq[0] = "mutated"
	assert.Equal(t, "intervals", kb.PedagogicalSequence()[0])

	progs := kb.Progressions()
	progs[0].Name = "mutated"
	assert.Equal(t, "ii_V_I", kb.Progressions()[0].Name)
}
