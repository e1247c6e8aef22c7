package services

import (
	"context"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
)

// DefaultStyle is used when a reharmonization request names no style
const DefaultStyle = "jazz"

// PositionSuggestion lists the substitutions for the chord at Position
type PositionSuggestion struct {
	Position         int                      `json:"position"`
	Original         string                   `json:"original"`
	Function         harmony.HarmonicFunction `json:"function"`
	Substitutions    []harmony.Substitution   `json:"substitutions"`
	FunctionApproach string                   `json:"function_approach"`
	PracticeTips     []string                 `json:"practice_tips"`
}

// Alternative is a complete rewritten progression
type Alternative struct {
	Name        string   `json:"name"`
	Progression []string `json:"progression"`
	Style       string   `json:"style"`
	Difficulty  string   `json:"difficulty"`
}

// ReharmonizationReport is the result of Suggest
type ReharmonizationReport struct {
	Original     []string             `json:"original"`
	Key          harmony.PitchClass   `json:"key"`
	Style        string               `json:"style"`
	Suggestions  []PositionSuggestion `json:"suggestions"`
	Alternatives []Alternative        `json:"alternatives"`
}

var reharmonizationTips = []string{
	"Play the original progression first",
	"Add one substitution at a time",
	"Listen to the effect of each substitution",
}

// ReharmonizationService proposes per-chord substitutions and complete alternatives
type ReharmonizationService struct {
	tracker
	kb *knowledge.Base
}

func NewReharmonizationService(kb *knowledge.Base, rec *metrics.Recorder) *ReharmonizationService {
	return &ReharmonizationService{tracker: tracker{metrics: rec}, kb: kb}
}

// Suggest returns substitutions per position plus the tritone and secondary-dominant
// versions of the progression. An alternative is only listed when it changes something.
func (s *ReharmonizationService) Suggest(ctx context.Context, symbols []string, key harmony.PitchClass, style string) (*ReharmonizationReport, error) {
	if style == "" {
		style = DefaultStyle
	}

	analysis, err := s.analyze(ctx, OpReharmonize, symbols, key)
	if err != nil {
		return nil, err
	}

	report := &ReharmonizationReport{
		Original:     symbols,
		Key:          key,
		Style:        style,
		Suggestions:  []PositionSuggestion{},
		Alternatives: []Alternative{},
	}

	for _, ps := range analysis.Substitutions {
		fn := analysis.Chords[ps.Index].Function
		report.Suggestions = append(report.Suggestions, PositionSuggestion{
			Position:         ps.Index,
			Original:         ps.Symbol,
			Function:         fn,
			Substitutions:    ps.Substitutions,
			FunctionApproach: s.kb.FunctionApproach(fn),
			PracticeTips:     reharmonizationTips,
		})
	}

	chords := make([]harmony.Chord, len(analysis.Chords))
	for i, ca := range analysis.Chords {
		chords[i] = ca.Chord
	}

	if tritone := TritoneVersion(symbols, chords); !equalSymbols(tritone, symbols) {
		report.Alternatives = append(report.Alternatives, Alternative{
			Name:        "Tritone substitute version",
			Progression: tritone,
			Style:       style + "_sophisticated",
			Difficulty:  DifficultyIntermediate,
		})
	}

	if secondary := SecondaryDominantVersion(symbols, chords); !equalSymbols(secondary, symbols) {
		report.Alternatives = append(report.Alternatives, Alternative{
			Name:        "Secondary dominant version",
			Progression: secondary,
			Style:       style + "_traditional",
			Difficulty:  DifficultyIntermediate,
		})
	}

	return report, nil
}

// TritoneVersion replaces every dominant seventh with its tritone substitute.
// symbols and chords must be parallel.
func TritoneVersion(symbols []string, chords []harmony.Chord) []string {
	out := make([]string, len(symbols))
	for i, c := range chords {
		if sub, ok := harmony.TritoneSubstitute(c); ok {
			out[i] = sub.Symbol()
		} else {
			out[i] = symbols[i]
		}
	}
	return out
}

// SecondaryDominantVersion inserts the V7 of every following major or minor chord before it.
// symbols and chords must be parallel.
func SecondaryDominantVersion(symbols []string, chords []harmony.Chord) []string {
	out := make([]string, 0, len(symbols)*2)
	for i, symbol := range symbols {
		out = append(out, symbol)
		if i+1 >= len(chords) {
			continue
		}
		next := chords[i+1]
		if next.Quality == harmony.QualityMajor || next.Quality == harmony.QualityMinor {
			out = append(out, harmony.SecondaryDominantOf(next).Symbol())
		}
	}
	return out
}

func equalSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
