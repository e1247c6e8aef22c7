package harmony

type qualityAdvice struct {
	tensions []Tension
	scales   []string
}

// Available tensions and compatible scales per quality; the first scale is primary
var adviceTable = map[Quality]qualityAdvice{
	QualityMajor7: {
		tensions: []Tension{Tension9, Tension11, Tension13},
		scales:   []string{"ionian", "lydian"},
	},
	QualityMinor7: {
		tensions: []Tension{Tension9, Tension11, Tension13},
		scales:   []string{"dorian", "aeolian"},
	},
	QualityDominant7: {
		tensions: []Tension{Tension9, Tension11, Tension13, TensionFlat13, TensionSharp11},
		scales:   []string{"mixolydian", "altered"},
	},
	QualityHalfDiminished: {
		tensions: []Tension{Tension9, Tension11, TensionFlat13},
		scales:   []string{"locrian"},
	},
}

// ScaleChromatic is the fallback for qualities without a scale mapping
const ScaleChromatic = "chromatic"

// TensionsFor returns the tensions available over a chord of quality q
func TensionsFor(q Quality) []Tension {
	advice, ok := adviceTable[q]
	if !ok {
		return []Tension{}
	}
	out := make([]Tension, len(advice.tensions))
	copy(out, advice.tensions)
	return out
}

// ScalesFor returns the scales compatible with quality q, primary first
func ScalesFor(q Quality) []string {
	advice, ok := adviceTable[q]
	if !ok {
		return []string{ScaleChromatic}
	}
	out := make([]string, len(advice.scales))
	copy(out, advice.scales)
	return out
}

// PrimaryScale returns the first entry of ScalesFor
func PrimaryScale(q Quality) string {
	return ScalesFor(q)[0]
}
