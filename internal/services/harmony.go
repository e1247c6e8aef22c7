package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
)

// Analysis contexts
const (
	ContextTonal = "tonal"
	ContextModal = "modal"
)

// Difficulty levels
const (
	DifficultyBasic        = "basic"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	basicMaxPoints        = 2
	intermediateMaxPoints = 5
	substitutePoints      = 2
	defaultVoicingOctave  = 4
)

// ChordPedagogy is the teaching material joined onto one chord
type ChordPedagogy struct {
	VolumeReference string   `json:"volume_reference"`
	Approach        string   `json:"approach"`
	CommonMistakes  []string `json:"common_mistakes"`
	MusicalExamples []string `json:"musical_examples"`
}

// TensionTheory explains the tensions available over a chord
type TensionTheory struct {
	Available    []harmony.Tension          `json:"available"`
	Explanations map[harmony.Tension]string `json:"explanations"`
	UsageTips    []string                   `json:"usage_tips"`
}

// EnrichedChord is an engine record plus pedagogy
type EnrichedChord struct {
	harmony.ChordAnalysis
	Pedagogy      ChordPedagogy `json:"pedagogy"`
	TensionTheory TensionTheory `json:"tension_theory"`
	ContextNote   string        `json:"context_note,omitempty"`
}

// Enrichment lists the substitutes offered for one chord
type Enrichment struct {
	Position    int                    `json:"position"`
	Original    string                 `json:"original"`
	Substitutes []harmony.Substitution `json:"substitutes"`
	Explanation string                 `json:"explanation"`
}

// Suggestions are the improvement hints for a progression
type Suggestions struct {
	HarmonicEnrichment []Enrichment `json:"harmonic_enrichment"`
	StyleSuggestions   []string     `json:"style_suggestions"`
	Exercises          []string     `json:"exercises"`
}

// Difficulty rates a progression by points
type Difficulty struct {
	Level  string `json:"level"`
	Points int    `json:"points"`
}

// ProgressionReport is the full analysis of a progression
type ProgressionReport struct {
	Progression      []string                   `json:"progression"`
	Key              harmony.PitchClass         `json:"key"`
	Context          string                     `json:"context"`
	Chords           []EnrichedChord            `json:"chords"`
	VoiceLeading     harmony.VoiceLeadingReport `json:"voice_leading"`
	Suggestions      Suggestions                `json:"suggestions"`
	Difficulty       Difficulty                 `json:"difficulty"`
	PedagogicalNotes []string                   `json:"pedagogical_notes"`
	RelatedConcepts  []knowledge.Concept        `json:"related_concepts"`
}

// ChordDetail is the single-chord report
type ChordDetail struct {
	Symbol              string                   `json:"symbol"`
	Chord               harmony.Chord            `json:"chord"`
	RomanNumeral        string                   `json:"roman_numeral"`
	Function            harmony.HarmonicFunction `json:"function"`
	Notes               []string                 `json:"notes"`
	Inversions          []string                 `json:"inversions"`
	MIDINotes           []int                    `json:"midi_notes"`
	Tensions            []harmony.Tension        `json:"tensions"`
	Scales              []string                 `json:"scales"`
	Substitutions       []harmony.Substitution   `json:"substitutions"`
	Pedagogy            ChordPedagogy            `json:"pedagogy"`
	PracticeOrder       []string                 `json:"practice_order"`
	PracticeSuggestions []string                 `json:"practice_suggestions"`
}

// HarmonyService joins engine analysis with the knowledge base
type HarmonyService struct {
	tracker
	kb *knowledge.Base
}

func NewHarmonyService(kb *knowledge.Base, rec *metrics.Recorder) *HarmonyService {
	return &HarmonyService{tracker: tracker{metrics: rec}, kb: kb}
}

// AnalyzeProgression analyzes a progression and adds pedagogy, suggestions and a difficulty rating.
// analysisContext is "tonal" or "modal"; empty means tonal.
func (s *HarmonyService) AnalyzeProgression(ctx context.Context, symbols []string, key harmony.PitchClass, analysisContext string) (*ProgressionReport, error) {
	if analysisContext == "" {
		analysisContext = ContextTonal
	}

	analysis, err := s.analyze(ctx, OpAnalyzeProgression, symbols, key)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordVoiceLeading(ctx, len(analysis.VoiceLeading.Issues))

	chords := make([]EnrichedChord, len(analysis.Chords))
	for i, ca := range analysis.Chords {
		chords[i] = EnrichedChord{
			ChordAnalysis: ca,
			Pedagogy:      s.pedagogyFor(ca.Chord.Quality, ca.Function),
			TensionTheory: s.tensionTheory(ca),
			ContextNote:   s.kb.ContextNote(analysisContext),
		}
	}

	difficulty := assessDifficulty(analysis)

	return &ProgressionReport{
		Progression:      symbols,
		Key:              key,
		Context:          analysisContext,
		Chords:           chords,
		VoiceLeading:     analysis.VoiceLeading,
		Suggestions:      s.suggestions(analysis),
		Difficulty:       difficulty,
		PedagogicalNotes: pedagogicalNotes(analysis, difficulty),
		RelatedConcepts:  s.relatedConcepts(analysis),
	}, nil
}

// ChordDetail analyzes a single chord in a key
func (s *HarmonyService) ChordDetail(ctx context.Context, symbol string, key harmony.PitchClass) (*ChordDetail, error) {
	start := time.Now()
	chord, err := harmony.Parse(symbol)
	s.finish(ctx, OpChordDetail, 1, start, err)
	if err != nil {
		return nil, err
	}

	ca := harmony.AnalyzeChord(symbol, chord, key)
	midi, err := harmony.MIDINotes(chord, defaultVoicingOctave)
	if err != nil {
		midi = []int{}
	}

	return &ChordDetail{
		Symbol:              symbol,
		Chord:               chord,
		RomanNumeral:        ca.RomanNumeral,
		Function:            ca.Function,
		Notes:               harmony.PitchClassNames(harmony.Notes(chord)),
		Inversions:          harmony.Inversions(chord),
		MIDINotes:           midi,
		Tensions:            ca.Tensions,
		Scales:              ca.Scales,
		Substitutions:       harmony.SubstitutionsFor(chord, key, harmony.Standalone),
		Pedagogy:            s.pedagogyFor(chord.Quality, ca.Function),
		PracticeOrder:       practiceOrder(chord.Quality),
		PracticeSuggestions: practiceSuggestions(chord),
	}, nil
}

func (s *HarmonyService) pedagogyFor(q harmony.Quality, f harmony.HarmonicFunction) ChordPedagogy {
	notes := s.kb.QualityNotes(q)
	return ChordPedagogy{
		VolumeReference: s.kb.VolumeReference(q, f),
		Approach:        notes.Approach,
		CommonMistakes:  nonNil(notes.CommonMistakes),
		MusicalExamples: nonNil(notes.MusicalExamples),
	}
}

func (s *HarmonyService) tensionTheory(ca harmony.ChordAnalysis) TensionTheory {
	explanations := make(map[harmony.Tension]string, len(ca.Tensions))
	for _, t := range ca.Tensions {
		if text := s.kb.TensionExplanation(t); text != "" {
			explanations[t] = text
		}
	}
	return TensionTheory{
		Available:    ca.Tensions,
		Explanations: explanations,
		UsageTips:    nonNil(s.kb.QualityNotes(ca.Chord.Quality).TensionTips),
	}
}

func (s *HarmonyService) suggestions(analysis *harmony.ProgressionAnalysis) Suggestions {
	out := Suggestions{
		HarmonicEnrichment: []Enrichment{},
		StyleSuggestions:   []string{},
	}

	for _, ps := range analysis.Substitutions {
		out.HarmonicEnrichment = append(out.HarmonicEnrichment, Enrichment{
			Position:    ps.Index,
			Original:    ps.Symbol,
			Substitutes: ps.Substitutions,
			Explanation: fmt.Sprintf("Alternatives for %s, see %s", ps.Symbol, s.kb.SubstituteReference()),
		})
	}

	functions := analysis.Functions()
	if hasTwoFiveOne(functions) {
		out.StyleSuggestions = append(out.StyleSuggestions,
			"This progression has a jazz character. Consider seventh chords throughout.")
	}
	if countFunction(functions, harmony.FunctionSubstitute) > 0 {
		out.StyleSuggestions = append(out.StyleSuggestions,
			"This progression has modal traits. See Volume 3 on modal harmony.")
	}

	out.Exercises = recommendExercises(analysis)
	return out
}

func recommendExercises(analysis *harmony.ProgressionAnalysis) []string {
	exercises := []string{}

	hasSeventh, hasSecondary := false, false
	for _, ca := range analysis.Chords {
		if ca.Chord.Quality.IsSeventh() {
			hasSeventh = true
		}
		// a dominant seventh that is not V of the key is acting as a secondary dominant
		if ca.Chord.Quality == harmony.QualityDominant7 && ca.RomanNumeral != "V" {
			hasSecondary = true
		}
	}

	if hasSeventh {
		exercises = append(exercises, "Practice the inversions of the seventh chords in this progression")
	}
	if hasSecondary {
		exercises = append(exercises, "Study secondary dominants in Volume 2")
	}
	return append(exercises,
		"Play the progression in different keys",
		"Try the progression in different rhythms and styles",
	)
}

func assessDifficulty(analysis *harmony.ProgressionAnalysis) Difficulty {
	points := 0
	for _, ca := range analysis.Chords {
		if ca.Chord.Quality.IsSeventh() {
			points++
		}
		points += len(ca.Chord.Extensions)
		if ca.Function == harmony.FunctionSubstitute {
			points += substitutePoints
		}
	}

	switch {
	case points <= basicMaxPoints:
		return Difficulty{Level: DifficultyBasic, Points: points}
	case points <= intermediateMaxPoints:
		return Difficulty{Level: DifficultyIntermediate, Points: points}
	default:
		return Difficulty{Level: DifficultyAdvanced, Points: points}
	}
}

func pedagogicalNotes(analysis *harmony.ProgressionAnalysis, d Difficulty) []string {
	seen := map[string]bool{}
	qualities := []string{}
	for _, ca := range analysis.Chords {
		q := string(ca.Chord.Quality)
		if !seen[q] {
			seen[q] = true
			qualities = append(qualities, q)
		}
	}
	sort.Strings(qualities)

	notes := []string{fmt.Sprintf("Difficulty: %s (%d points)", d.Level, d.Points)}
	if len(qualities) > 0 {
		notes = append(notes, "Chord qualities involved: "+strings.Join(qualities, ", "))
	}
	return notes
}

func (s *HarmonyService) relatedConcepts(analysis *harmony.ProgressionAnalysis) []knowledge.Concept {
	byName := map[string]knowledge.Concept{}
	for _, ca := range analysis.Chords {
		for _, c := range s.kb.QualityConcepts(ca.Chord.Quality) {
			byName[c.Name] = c
		}
	}

	out := make([]knowledge.Concept, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func practiceOrder(q harmony.Quality) []string {
	order := []string{
		"1. Learn the basic triad",
		"2. Practice the inversions",
		"3. Add the seventh",
		"4. Try the available tensions",
	}
	if q == harmony.QualityDominant7 {
		order = append(order, "5. Practice resolutions in different keys")
	}
	return order
}

func practiceSuggestions(c harmony.Chord) []string {
	out := []string{
		fmt.Sprintf("Practice %s in every inversion", c.Symbol()),
		"Play it in different rhythms (bossa nova, jazz, pop)",
		"Combine it with other chords of the same family",
		"Improvise melodies using the available tensions",
	}
	for _, t := range harmony.TensionsFor(c.Quality) {
		if c.HasExtension(t) {
			out = append(out, fmt.Sprintf("Voice the written %s as the top note", t))
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CheckVoiceLeading runs the root-motion check over a progression
func (s *HarmonyService) CheckVoiceLeading(ctx context.Context, symbols []string) (harmony.VoiceLeadingReport, error) {
	start := time.Now()
	report, err := harmony.CheckVoiceLeading(symbols)
	s.finish(ctx, OpVoiceLeading, len(symbols), start, err)
	if err != nil {
		return harmony.VoiceLeadingReport{}, err
	}
	s.metrics.RecordVoiceLeading(ctx, len(report.Issues))
	return report, nil
}

// Substitutions lists the substitution candidates for every position of a progression
func (s *HarmonyService) Substitutions(ctx context.Context, symbols []string, key harmony.PitchClass) ([]harmony.PositionedSubstitutions, error) {
	analysis, err := s.analyze(ctx, OpSubstitutions, symbols, key)
	if err != nil {
		return nil, err
	}
	return analysis.Substitutions, nil
}
