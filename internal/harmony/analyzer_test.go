package harmony

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeTwoFiveOne(t *testing.T) {
	analysis, err := Analyze([]string{"Dm7", "G7", "CM7"}, MustPitchClass("C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedFunctions := []HarmonicFunction{FunctionSubdominant, FunctionDominant, FunctionTonic}
	if got := analysis.Functions(); !reflect.DeepEqual(got, expectedFunctions) {
		t.Errorf("functions: expected %v, got %v", expectedFunctions, got)
	}
	if got := analysis.RomanNumerals(); !reflect.DeepEqual(got, []string{"ii", "V", "I"}) {
		t.Errorf("numerals: got %v", got)
	}

	if analysis.Chords[0].Symbol != "Dm7" || analysis.Chords[2].Chord.Quality != QualityMajor7 {
		t.Errorf("records out of order: %+v", analysis.Chords)
	}
	if !reflect.DeepEqual(analysis.Chords[1].Scales, []string{"mixolydian", "altered"}) {
		t.Errorf("unexpected scales for G7: %v", analysis.Chords[1].Scales)
	}

	if len(analysis.Substitutions) != 1 {
		t.Fatalf("expected substitutions only for G7, got %+v", analysis.Substitutions)
	}
	if analysis.Substitutions[0].Index != 1 || analysis.Substitutions[0].Substitutions[0].Symbol != "C#7" {
		t.Errorf("unexpected substitutions %+v", analysis.Substitutions[0])
	}
}

func TestAnalyzeSecondaryDominantSkipsFinalChord(t *testing.T) {
	analysis, err := Analyze([]string{"C", "Am", "F", "G"}, MustPitchClass("C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var last PositionedSubstitutions
	for _, ps := range analysis.Substitutions {
		if ps.Index == 3 {
			last = ps
		}
	}
	if len(last.Substitutions) != 1 || last.Substitutions[0].Rule != RuleModalBorrowing {
		t.Errorf("final G should only borrow, got %+v", last.Substitutions)
	}
}

func TestAnalyzeFailsAtomically(t *testing.T) {
	analysis, err := Analyze([]string{"C", "Am", "H7", "G"}, MustPitchClass("C"))
	if !errors.Is(err, ErrInvalidChordSymbol) {
		t.Fatalf("expected ErrInvalidChordSymbol, got %v", err)
	}
	if analysis != nil {
		t.Errorf("expected no partial result, got %+v", analysis)
	}
}

func TestAnalyzeEmptyProgression(t *testing.T) {
	analysis, err := Analyze(nil, MustPitchClass("G"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.Chords) != 0 || !analysis.VoiceLeading.Valid {
		t.Errorf("unexpected analysis %+v", analysis)
	}
}
