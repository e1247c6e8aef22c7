package harmony

// ChordAnalysis is the annotated record for one chord of a progression
type ChordAnalysis struct {
	Symbol       string           `json:"symbol"`
	Chord        Chord            `json:"chord"`
	RomanNumeral string           `json:"roman_numeral"`
	Function     HarmonicFunction `json:"function"`
	Tensions     []Tension        `json:"tensions"`
	Scales       []string         `json:"scales"`
}

// PositionedSubstitutions groups the candidates for the chord at Index
type PositionedSubstitutions struct {
	Index         int            `json:"index"`
	Symbol        string         `json:"symbol"`
	Substitutions []Substitution `json:"substitutions"`
}

// ProgressionAnalysis is the result of Analyze
type ProgressionAnalysis struct {
	Key           PitchClass                `json:"key"`
	Chords        []ChordAnalysis           `json:"chords"`
	VoiceLeading  VoiceLeadingReport        `json:"voice_leading"`
	Substitutions []PositionedSubstitutions `json:"substitutions"`
}

// AnalyzeChord resolves and annotates an already parsed chord
func AnalyzeChord(symbol string, c Chord, key PitchClass) ChordAnalysis {
	res := Resolve(c, key)
	return ChordAnalysis{
		Symbol:       symbol,
		Chord:        c,
		RomanNumeral: res.RomanNumeral,
		Function:     res.Function,
		Tensions:     TensionsFor(c.Quality),
		Scales:       ScalesFor(c.Quality),
	}
}

// Analyze parses, resolves and annotates every symbol in order. A single
// invalid symbol fails the whole call and no partial result is returned.
func Analyze(symbols []string, key PitchClass) (*ProgressionAnalysis, error) {
	chords, err := ParseProgression(symbols)
	if err != nil {
		return nil, err
	}

	analysis := &ProgressionAnalysis{
		Key:           key,
		Chords:        make([]ChordAnalysis, len(chords)),
		VoiceLeading:  CheckChords(chords),
		Substitutions: []PositionedSubstitutions{},
	}

	for i, c := range chords {
		analysis.Chords[i] = AnalyzeChord(symbols[i], c, key)

		subs := SubstitutionsFor(c, key, Position{Index: i, Length: len(chords)})
		if len(subs) > 0 {
			analysis.Substitutions = append(analysis.Substitutions, PositionedSubstitutions{
				Index:         i,
				Symbol:        symbols[i],
				Substitutions: subs,
			})
		}
	}

	return analysis, nil
}

// Functions returns the harmonic function of each chord, in order
func (a *ProgressionAnalysis) Functions() []HarmonicFunction {
	out := make([]HarmonicFunction, len(a.Chords))
	for i, c := range a.Chords {
		out[i] = c.Function
	}
	return out
}

// RomanNumerals returns the roman numeral of each chord, in order
func (a *ProgressionAnalysis) RomanNumerals() []string {
	out := make([]string, len(a.Chords))
	for i, c := range a.Chords {
		out[i] = c.RomanNumeral
	}
	return out
}
