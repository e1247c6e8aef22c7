package harmony

// Quality is the chord quality a symbol resolves to
type Quality string

const (
	QualityMajor          Quality = "major"
	QualityMinor          Quality = "minor"
	QualityDiminished     Quality = "diminished"
	QualityAugmented      Quality = "augmented"
	QualityDominant7      Quality = "dominant7"
	QualityMajor7         Quality = "major7"
	QualityMinor7         Quality = "minor7"
	QualityHalfDiminished Quality = "half_diminished"
	QualityDiminished7    Quality = "diminished7"
	QualitySuspended4     Quality = "suspended4"
	QualitySuspended2     Quality = "suspended2"
)

// Canonical symbol suffix per quality
var qualitySuffixes = map[Quality]string{
	QualityMajor:          "",
	QualityMinor:          "m",
	QualityDiminished:     "dim",
	QualityAugmented:      "aug",
	QualityDominant7:      "7",
	QualityMajor7:         "maj7",
	QualityMinor7:         "m7",
	QualityHalfDiminished: "m7b5",
	QualityDiminished7:    "dim7",
	QualitySuspended4:     "sus4",
	QualitySuspended2:     "sus2",
}

// Qualities returns every chord quality in declaration order
func Qualities() []Quality {
	return []Quality{
		QualityMajor, QualityMinor, QualityDiminished, QualityAugmented,
		QualityDominant7, QualityMajor7, QualityMinor7, QualityHalfDiminished,
		QualityDiminished7, QualitySuspended4, QualitySuspended2,
	}
}

// Suffix returns the canonical chord-symbol suffix ("" for a major triad)
func (q Quality) Suffix() string {
	return qualitySuffixes[q]
}

// IsSeventh reports whether the quality carries a seventh
func (q Quality) IsSeventh() bool {
	switch q {
	case QualityDominant7, QualityMajor7, QualityMinor7, QualityHalfDiminished, QualityDiminished7:
		return true
	}
	return false
}

// Tension is an added non-triadic degree
type Tension string

const (
	Tension9       Tension = "9"
	Tension11      Tension = "11"
	Tension13      Tension = "13"
	TensionSharp11 Tension = "#11"
	TensionFlat13  Tension = "b13"
)

// tensionVocabulary is the fixed vocabulary in canonical order
var tensionVocabulary = []Tension{Tension9, Tension11, Tension13, TensionSharp11, TensionFlat13}

func isTension(label string) bool {
	for _, t := range tensionVocabulary {
		if string(t) == label {
			return true
		}
	}
	return false
}

// HarmonicFunction is the coarse role of a chord in a key
type HarmonicFunction string

const (
	FunctionTonic             HarmonicFunction = "tonic"
	FunctionSubdominant       HarmonicFunction = "subdominant"
	FunctionDominant          HarmonicFunction = "dominant"
	FunctionSecondaryDominant HarmonicFunction = "secondary_dominant"
	FunctionDiminishedPassing HarmonicFunction = "diminished_passing"
	FunctionSubstitute        HarmonicFunction = "substitute"
)

var functionAbbrevs = map[HarmonicFunction]string{
	FunctionTonic:             "T",
	FunctionSubdominant:       "S",
	FunctionDominant:          "D",
	FunctionSecondaryDominant: "V/x",
	FunctionDiminishedPassing: "dim",
	FunctionSubstitute:        "sub",
}

// Abbrev returns the short analysis label (T, S, D, ...)
func (f HarmonicFunction) Abbrev() string {
	return functionAbbrevs[f]
}

// Chord is a parsed chord symbol
type Chord struct {
	Root       PitchClass  `json:"root"`
	Quality    Quality     `json:"quality"`
	Extensions []Tension   `json:"extensions"`
	Bass       *PitchClass `json:"bass,omitempty"`
}

// Symbol serializes the chord as root + canonical suffix (+ slash bass).
// Extensions are not carried.
func (c Chord) Symbol() string {
	s := c.Root.String() + c.Quality.Suffix()
	if c.Bass != nil {
		s += "/" + c.Bass.String()
	}
	return s
}

// HasExtension reports whether the chord names the given tension
func (c Chord) HasExtension(t Tension) bool {
	for _, ext := range c.Extensions {
		if ext == t {
			return true
		}
	}
	return false
}

// chordOn builds a plain chord with no extensions or slash bass
func chordOn(root PitchClass, q Quality) Chord {
	return Chord{Root: root, Quality: q, Extensions: []Tension{}}
}
