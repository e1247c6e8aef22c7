package services

import (
	"context"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/metrics"
)

// modalThreshold is the share of substitute chords above which a progression reads as modal
const modalThreshold = 0.3

// ChordScale maps one chord to its scales and note roles
type ChordScale struct {
	Chord             string   `json:"chord"`
	PrimaryScale      string   `json:"primary_scale"`
	AlternativeScales []string `json:"alternative_scales"`
	ScaleNotes        []string `json:"scale_notes"`
	AvoidNotes        []string `json:"avoid_notes"`
	StrongNotes       []string `json:"strong_notes"`
	TensionTips       []string `json:"tension_tips"`
}

// Approach lists the notes that lead into a target
type Approach struct {
	Target             string   `json:"target"`
	ChromaticBelow     string   `json:"chromatic_below"`
	ChromaticAbove     string   `json:"chromatic_above"`
	DiatonicApproaches []string `json:"diatonic_approaches"`
}

// TargetNotes are the notes to aim for over one chord
type TargetNotes struct {
	Chord           string     `json:"chord"`
	PrimaryTargets  []string   `json:"primary_targets"`
	Approaches      []Approach `json:"approaches"`
	ResolutionNotes []string   `json:"resolution_notes"`
}

// Strategy is a melodic approach suited to the progression
type Strategy struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Techniques  []string `json:"techniques"`
}

// PracticeExercise is a step-by-step practice routine
type PracticeExercise struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Reference   string   `json:"reference"`
}

// ImprovisationGuide is the result of Guide
type ImprovisationGuide struct {
	Progression []string           `json:"progression"`
	Key         harmony.PitchClass `json:"key"`
	ChordScales []ChordScale       `json:"chord_scales"`
	TargetNotes []TargetNotes      `json:"target_notes"`
	Strategies  []Strategy         `json:"strategies"`
	Exercises   []PracticeExercise `json:"exercises"`
}

var (
	twoFiveOneStrategy = Strategy{
		Name:        "ii-V-I licks",
		Description: "Use phrases built for the ii-V-I",
		Techniques: []string{
			"Connect the thirds of each chord",
			"Use the bebop scale over the V7",
			"Resolve to the third or fifth of the I",
		},
	}
	modalStrategy = Strategy{
		Name:        "Modal approach",
		Description: "Bring out the color of the mode",
		Techniques: []string{
			"Stress the characteristic notes of the mode",
			"Use harmonic pedals",
			"Avoid strong tonal resolutions",
		},
	}
	chordToneStrategy = Strategy{
		Name:        "Chord tones",
		Description: "Build phrases from the notes of each chord",
		Techniques: []string{
			"Start and end on chord tones",
			"Use passing tones between chord tones",
			"Vary the harmonic rhythm",
		},
	}

	practiceExercises = []PracticeExercise{
		{
			Name:        "Chord arpeggios",
			Description: "Arpeggiate every chord of the progression",
			Steps: []string{
				"Play root, third, fifth and seventh of each chord",
				"Practice in different octaves",
				"Vary the articulation",
			},
			Reference: "Volume 1 - Inversions and Arpeggios",
		},
		{
			Name:        "Target note connection",
			Description: "Connect the thirds and sevenths between chords",
			Steps: []string{
				"Find the third and seventh of each chord",
				"Write lines that connect those notes",
				"Approach them chromatically",
			},
			Reference: "Volume 2 - Melodic Voice Leading",
		},
		{
			Name:        "Scale practice",
			Description: "Practice the recommended scales",
			Steps: []string{
				"Play each scale over its chord",
				"Build melodic patterns",
				"Improvise using only scale notes",
			},
			Reference: "Volume 3 - Modes and Scales",
		},
	}
)

// ImprovisationService builds improvisation guides over a progression
type ImprovisationService struct {
	tracker
	kb *knowledge.Base
}

func NewImprovisationService(kb *knowledge.Base, rec *metrics.Recorder) *ImprovisationService {
	return &ImprovisationService{tracker: tracker{metrics: rec}, kb: kb}
}

// Guide maps each chord to scales and target notes and picks strategies for the progression
func (s *ImprovisationService) Guide(ctx context.Context, symbols []string, key harmony.PitchClass) (*ImprovisationGuide, error) {
	analysis, err := s.analyze(ctx, OpImprovisationGuide, symbols, key)
	if err != nil {
		return nil, err
	}

	guide := &ImprovisationGuide{
		Progression: symbols,
		Key:         key,
		ChordScales: make([]ChordScale, len(analysis.Chords)),
		TargetNotes: make([]TargetNotes, len(analysis.Chords)),
		Strategies:  strategiesFor(analysis),
		Exercises:   practiceExercises,
	}

	for i, ca := range analysis.Chords {
		guide.ChordScales[i] = s.chordScale(ca)

		strong := StrongNotes(ca.Chord)
		targets := TargetNotes{
			Chord:           ca.Symbol,
			PrimaryTargets:  harmony.PitchClassNames(strong[1:]),
			Approaches:      approachesFor(strong[1:]),
			ResolutionNotes: []string{},
		}
		if i+1 < len(analysis.Chords) {
			targets.ResolutionNotes = harmony.PitchClassNames(StrongNotes(analysis.Chords[i+1].Chord))
		}
		guide.TargetNotes[i] = targets
	}

	return guide, nil
}

func (s *ImprovisationService) chordScale(ca harmony.ChordAnalysis) ChordScale {
	primary := harmony.PrimaryScale(ca.Chord.Quality)
	return ChordScale{
		Chord:             ca.Symbol,
		PrimaryScale:      primary,
		AlternativeScales: ca.Scales[1:],
		ScaleNotes:        harmony.PitchClassNames(harmony.ScaleNotes(ca.Chord.Root, primary)),
		AvoidNotes:        harmony.PitchClassNames(AvoidNotes(ca.Chord)),
		StrongNotes:       harmony.PitchClassNames(StrongNotes(ca.Chord)),
		TensionTips:       nonNil(s.kb.QualityNotes(ca.Chord.Quality).TensionTips),
	}
}

// AvoidNotes returns the notes to avoid holding over c: the perfect fourth over a major seventh
func AvoidNotes(c harmony.Chord) []harmony.PitchClass {
	if c.Quality == harmony.QualityMajor7 {
		return []harmony.PitchClass{c.Root.Transpose(5)}
	}
	return []harmony.PitchClass{}
}

// StrongNotes returns the root, then the third unless the chord is suspended,
// then the seventh when the chord has one
func StrongNotes(c harmony.Chord) []harmony.PitchClass {
	notes := harmony.Notes(c)
	strong := []harmony.PitchClass{c.Root}

	if c.Quality != harmony.QualitySuspended2 && c.Quality != harmony.QualitySuspended4 {
		strong = append(strong, notes[1])
	}
	if c.Quality.IsSeventh() {
		strong = append(strong, notes[3])
	}
	return strong
}

func approachesFor(targets []harmony.PitchClass) []Approach {
	out := make([]Approach, len(targets))
	for i, t := range targets {
		out[i] = Approach{
			Target:         t.String(),
			ChromaticBelow: t.Transpose(-1).String(),
			ChromaticAbove: t.Transpose(1).String(),
			DiatonicApproaches: []string{
				t.Transpose(-2).String(),
				t.Transpose(2).String(),
			},
		}
	}
	return out
}

func strategiesFor(analysis *harmony.ProgressionAnalysis) []Strategy {
	strategies := []Strategy{}
	functions := analysis.Functions()

	if hasTwoFiveOne(functions) {
		strategies = append(strategies, twoFiveOneStrategy)
	}
	if len(functions) > 0 && float64(countFunction(functions, harmony.FunctionSubstitute)) > modalThreshold*float64(len(functions)) {
		strategies = append(strategies, modalStrategy)
	}
	return append(strategies, chordToneStrategy)
}
