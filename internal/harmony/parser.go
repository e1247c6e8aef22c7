package harmony

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidChordSymbol is returned when a string does not follow the chord grammar
var ErrInvalidChordSymbol = errors.New("invalid chord symbol")

// root, quality suffix, optional slash bass
var chordPattern = regexp.MustCompile(`^([A-G][#b]?)([^/]*?)(?:/([A-G][#b]?))?$`)

// tensionPattern captures altered tokens too so "b9" is not read as "9"
var tensionPattern = regexp.MustCompile(`[#b]?(?:13|11|9)`)

type qualityRule struct {
	token   string
	quality Quality
}

// qualityRules is evaluated in order, first match wins. Every token sits above any
// shorter token it contains: "m7" before "m", "dim" before "m", "maj7" before "7".
// Minor-major sevenths ("mM7", "m(maj7)") carry a minor third and read as minor7.
var qualityRules = []qualityRule{
	{"m7b5", QualityHalfDiminished},
	{"ø", QualityHalfDiminished},
	{"dim7", QualityDiminished7},
	{"°7", QualityDiminished7},
	{"m7", QualityMinor7},
	{"min7", QualityMinor7},
	{"mM7", QualityMinor7},
	{"m(maj7)", QualityMinor7},
	{"maj7", QualityMajor7},
	{"M7", QualityMajor7},
	{"Δ", QualityMajor7},
	{"dim", QualityDiminished},
	{"°", QualityDiminished},
	{"maj", QualityMajor},
	{"min", QualityMinor},
	{"m", QualityMinor},
	{"7", QualityDominant7},
	{"aug", QualityAugmented},
	{"+", QualityAugmented},
	{"sus4", QualitySuspended4},
	{"sus2", QualitySuspended2},
	{"sus", QualitySuspended4},
}

// Parse turns a chord symbol such as "Dm7", "G7#11" or "C/E" into a Chord.
// Roots and basses are normalized onto the sharp alphabet.
func Parse(symbol string) (Chord, error) {
	match := chordPattern.FindStringSubmatch(strings.TrimSpace(symbol))
	if match == nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChordSymbol, symbol)
	}

	root, err := ParsePitchClass(match[1])
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChordSymbol, symbol)
	}

	suffix := match[2]
	chord := Chord{
		Root:       root,
		Quality:    classifyQuality(suffix),
		Extensions: parseTensions(suffix),
	}

	if match[3] != "" {
		bass, err := ParsePitchClass(match[3])
		if err != nil {
			return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChordSymbol, symbol)
		}
		chord.Bass = &bass
	}

	return chord, nil
}

// MustParse is Parse for literals; it panics on invalid input
func MustParse(symbol string) Chord {
	c, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseProgression parses every symbol or fails on the first invalid one
func ParseProgression(symbols []string) ([]Chord, error) {
	chords := make([]Chord, 0, len(symbols))
	for i, symbol := range symbols {
		c, err := Parse(symbol)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i, err)
		}
		chords = append(chords, c)
	}
	return chords, nil
}

func classifyQuality(suffix string) Quality {
	for _, rule := range qualityRules {
		if strings.Contains(suffix, rule.token) {
			return rule.quality
		}
	}
	return QualityMajor
}

// parseTensions returns vocabulary tensions found in the suffix, deduplicated,
// in vocabulary order
func parseTensions(suffix string) []Tension {
	found := make(map[Tension]bool)
	for _, token := range tensionPattern.FindAllString(suffix, -1) {
		if isTension(token) {
			found[Tension(token)] = true
		}
	}

	tensions := make([]Tension, 0, len(found))
	for _, t := range tensionVocabulary {
		if found[t] {
			tensions = append(tensions, t)
		}
	}
	return tensions
}
