package harmony

import "strings"

// Resolution is the roman numeral and function of a chord relative to a key
type Resolution struct {
	RomanNumeral string           `json:"roman_numeral"`
	Function     HarmonicFunction `json:"function"`
}

// Diatonic degrees of the major key, by semitone distance from the tonic
var degreeNumerals = map[int]string{
	0:  "I",
	2:  "II",
	4:  "III",
	5:  "IV",
	7:  "V",
	9:  "VI",
	11: "VII",
}

// nonDiatonicNumeral is used for every chromatic root
const nonDiatonicNumeral = "bII"

var numeralFunctions = map[string]HarmonicFunction{
	"I":   FunctionTonic,
	"II":  FunctionSubdominant,
	"III": FunctionTonic,
	"IV":  FunctionSubdominant,
	"V":   FunctionDominant,
	"VI":  FunctionTonic,
	"VII": FunctionDominant,
}

// Resolve returns the roman numeral and harmonic function of c in the major key.
// It never fails: chromatic roots come back as "bII" with a substitute function.
func Resolve(c Chord, key PitchClass) Resolution {
	numeral, ok := degreeNumerals[key.Interval(c.Root)]
	if !ok {
		numeral = nonDiatonicNumeral
	}

	switch c.Quality {
	case QualityMinor, QualityMinor7:
		numeral = strings.ToLower(numeral)
	case QualityDiminished:
		numeral = strings.ToLower(numeral) + "°"
	}

	return Resolution{
		RomanNumeral: numeral,
		Function:     FunctionForNumeral(numeral),
	}
}

// FunctionForNumeral maps a roman numeral, in any case and with or without "°", to its function
func FunctionForNumeral(numeral string) HarmonicFunction {
	key := strings.ToUpper(strings.ReplaceAll(numeral, "°", ""))
	if f, ok := numeralFunctions[key]; ok {
		return f
	}
	return FunctionSubstitute
}
