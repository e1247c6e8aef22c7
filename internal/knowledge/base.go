package knowledge

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/pkg/embedded"
)

// ErrDuplicateConcept is returned when two concepts share a name
var ErrDuplicateConcept = errors.New("duplicate concept")

const (
	minLevel = 1
	maxLevel = 3
)

// Sources holds the raw YAML documents a Base is decoded from
type Sources struct {
	Concepts     []byte
	Progressions []byte
	Exercises    []byte
	Pedagogy     []byte
}

// EmbeddedSources returns the documents compiled into the binary
func EmbeddedSources() Sources {
	return Sources{
		Concepts:     embedded.ConceptsYAML,
		Progressions: embedded.ProgressionsYAML,
		Exercises:    embedded.ExercisesYAML,
		Pedagogy:     embedded.PedagogyYAML,
	}
}

// Base is the read-only pedagogical store. It is safe for concurrent use once loaded.
type Base struct {
	concepts     map[string]Concept
	sequence     []string
	progressions []Progression
	exercises    map[int][]ExerciseTemplate
	pedagogy     pedagogyFile
}

// Load decodes the embedded knowledge base
func Load() (*Base, error) {
	return LoadFrom(EmbeddedSources())
}

// MustLoad is Load for process start; it panics on malformed content
func MustLoad() *Base {
	kb, err := Load()
	if err != nil {
		panic(err)
	}
	return kb
}

// LoadFrom decodes a knowledge base from the given documents
func LoadFrom(src Sources) (*Base, error) {
	var cf conceptsFile
	if err := yaml.Unmarshal(src.Concepts, &cf); err != nil {
		return nil, fmt.Errorf("failed to decode concepts: %w", err)
	}
	var pf progressionsFile
	if err := yaml.Unmarshal(src.Progressions, &pf); err != nil {
		return nil, fmt.Errorf("failed to decode progressions: %w", err)
	}
	var ef exercisesFile
	if err := yaml.Unmarshal(src.Exercises, &ef); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}
	var pd pedagogyFile
	if err := yaml.Unmarshal(src.Pedagogy, &pd); err != nil {
		return nil, fmt.Errorf("failed to decode pedagogy: %w", err)
	}

	kb := &Base{
		concepts:     make(map[string]Concept, len(cf.Concepts)),
		sequence:     cf.PedagogicalSequence,
		progressions: pf.Progressions,
		exercises:    make(map[int][]ExerciseTemplate),
		pedagogy:     pd,
	}

	for _, c := range cf.Concepts {
		if _, exists := kb.concepts[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConcept, c.Name)
		}
		kb.concepts[c.Name] = c
	}

	for _, ex := range ef.Exercises {
		if ex.Level < minLevel || ex.Level > maxLevel {
			return nil, fmt.Errorf("exercise %q has level %d outside %d-%d", ex.Category, ex.Level, minLevel, maxLevel)
		}
		kb.exercises[ex.Level] = append(kb.exercises[ex.Level], ex)
	}

	return kb, nil
}

// Concept looks up a concept by name
func (kb *Base) Concept(name string) (Concept, bool) {
	c, ok := kb.concepts[name]
	return c, ok
}

// Concepts returns all concept names, sorted
func (kb *Base) Concepts() []string {
	names := make([]string, 0, len(kb.concepts))
	for name := range kb.concepts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RelatedConcepts returns the defined concepts a concept points to. Undefined names are skipped.
func (kb *Base) RelatedConcepts(name string) []Concept {
	base, ok := kb.concepts[name]
	if !ok {
		return []Concept{}
	}
	return kb.resolve(base.RelatedConcepts)
}

func (kb *Base) resolve(names []string) []Concept {
	out := []Concept{}
	for _, n := range names {
		if c, ok := kb.concepts[n]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Progressions returns the canned progressions in file order
func (kb *Base) Progressions() []Progression {
	out := make([]Progression, len(kb.progressions))
	copy(out, kb.progressions)
	return out
}

// Exercises returns the exercises for a level, optionally narrowed to one category.
// Levels outside 1-3 fall back to level 1.
func (kb *Base) Exercises(level int, category string) []ExerciseTemplate {
	if level < minLevel || level > maxLevel {
		level = minLevel
	}

	out := []ExerciseTemplate{}
	for _, ex := range kb.exercises[level] {
		if category == "" || ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// PedagogicalSequence returns the recommended study order
func (kb *Base) PedagogicalSequence() []string {
	out := make([]string, len(kb.sequence))
	copy(out, kb.sequence)
	return out
}

// QualityNotes returns the teaching notes for q, or the defaults when none are defined
func (kb *Base) QualityNotes(q harmony.Quality) QualityNotes {
	if notes, ok := kb.pedagogy.Qualities[string(q)]; ok {
		return notes
	}
	return kb.pedagogy.DefaultQuality
}

// VolumeReference picks the book reference for a chord given its function
func (kb *Base) VolumeReference(q harmony.Quality, f harmony.HarmonicFunction) string {
	if notes, ok := kb.pedagogy.Qualities[string(q)]; ok && notes.VolumeReference != "" {
		return notes.VolumeReference
	}
	if f == harmony.FunctionSubstitute && kb.pedagogy.SubstituteVolumeReference != "" {
		return kb.pedagogy.SubstituteVolumeReference
	}
	return kb.pedagogy.DefaultQuality.VolumeReference
}

// SubstituteReference is the book reference for substitute chords
func (kb *Base) SubstituteReference() string {
	return kb.pedagogy.SubstituteVolumeReference
}

// TensionExplanation describes how a tension is used
func (kb *Base) TensionExplanation(t harmony.Tension) string {
	return kb.pedagogy.Tensions[string(t)]
}

// FunctionApproach describes how to treat a chord of the given function when substituting
func (kb *Base) FunctionApproach(f harmony.HarmonicFunction) string {
	if text, ok := kb.pedagogy.Functions[string(f)]; ok {
		return text
	}
	return kb.pedagogy.DefaultFunctionApproach
}

// ContextNote returns the reading note for an analysis context ("tonal", "modal")
func (kb *Base) ContextNote(context string) string {
	return kb.pedagogy.ContextNotes[context]
}

// QualityConcepts returns the defined concepts linked to a chord quality
func (kb *Base) QualityConcepts(q harmony.Quality) []Concept {
	return kb.resolve(kb.QualityNotes(q).RelatedConcepts)
}
