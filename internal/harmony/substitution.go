package harmony

import "fmt"

// Rule names the substitution rule that produced a candidate
type Rule string

const (
	RuleTritone           Rule = "tritone_substitution"
	RuleModalBorrowing    Rule = "modal_borrowing"
	RuleSecondaryDominant Rule = "secondary_dominant"
)

// Position locates a chord within its progression
type Position struct {
	Index  int
	Length int
}

// Standalone is the position of a chord queried on its own
var Standalone = Position{Index: 0, Length: 1}

// Final reports whether the chord is the last element of the progression
func (p Position) Final() bool {
	return p.Index >= p.Length-1
}

// Substitution is a candidate replacement for a chord
type Substitution struct {
	Symbol     string           `json:"symbol"`
	Chord      Chord            `json:"chord"`
	Rule       Rule             `json:"rule"`
	Function   HarmonicFunction `json:"function"`
	Rationale  string           `json:"rationale"`
	ResolvesTo *PitchClass      `json:"resolves_to,omitempty"`
}

// SubstitutionsFor returns every candidate the rules produce for c, in rule order.
// Candidates are not ranked.
func SubstitutionsFor(c Chord, key PitchClass, pos Position) []Substitution {
	subs := []Substitution{}

	if c.Quality == QualityDominant7 {
		sub := chordOn(c.Root.Transpose(6), QualityDominant7)
		subs = append(subs, Substitution{
			Symbol:    sub.Symbol(),
			Chord:     sub,
			Rule:      RuleTritone,
			Function:  FunctionDominant,
			Rationale: fmt.Sprintf("%s shares its tritone with %s", sub.Symbol(), c.Symbol()),
		})
	}

	if c.Quality == QualityMajor {
		sub := chordOn(c.Root, QualityMinor)
		subs = append(subs, Substitution{
			Symbol:    sub.Symbol(),
			Chord:     sub,
			Rule:      RuleModalBorrowing,
			Function:  FunctionSubstitute,
			Rationale: fmt.Sprintf("%s borrowed from the parallel minor of %s", sub.Symbol(), c.Root),
		})
	}

	if (c.Quality == QualityMajor || c.Quality == QualityMinor) && !pos.Final() {
		sub := chordOn(c.Root.Transpose(7), QualityDominant7)
		target := c.Root
		subs = append(subs, Substitution{
			Symbol:     sub.Symbol(),
			Chord:      sub,
			Rule:       RuleSecondaryDominant,
			Function:   FunctionSecondaryDominant,
			Rationale:  fmt.Sprintf("%s is V7/%s, resolving to %s", sub.Symbol(), Resolve(c, key).RomanNumeral, target),
			ResolvesTo: &target,
		})
	}

	return subs
}

// TritoneSubstitute returns the dominant seventh a tritone away, or false when c is not a dominant seventh
func TritoneSubstitute(c Chord) (Chord, bool) {
	if c.Quality != QualityDominant7 {
		return Chord{}, false
	}
	return chordOn(c.Root.Transpose(6), QualityDominant7), true
}

// SecondaryDominantOf returns the V7 that resolves to target
func SecondaryDominantOf(target Chord) Chord {
	return chordOn(target.Root.Transpose(7), QualityDominant7)
}
