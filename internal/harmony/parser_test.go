package harmony

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		symbol  string
		root    string
		quality Quality
	}{
		{"C", "C", QualityMajor},
		{"Cm", "C", QualityMinor},
		{"Cm7", "C", QualityMinor7},
		{"Cmin7", "C", QualityMinor7},
		{"CmM7", "C", QualityMinor7},
		{"Cm(maj7)", "C", QualityMinor7},
		{"Cmaj7", "C", QualityMajor7},
		{"CM7", "C", QualityMajor7},
		{"CΔ", "C", QualityMajor7},
		{"C7", "C", QualityDominant7},
		{"Bm7b5", "B", QualityHalfDiminished},
		{"Bø", "B", QualityHalfDiminished},
		{"Bdim", "B", QualityDiminished},
		{"B°", "B", QualityDiminished},
		{"Bdim7", "B", QualityDiminished7},
		{"B°7", "B", QualityDiminished7},
		{"Caug", "C", QualityAugmented},
		{"C+", "C", QualityAugmented},
		{"Csus4", "C", QualitySuspended4},
		{"Csus2", "C", QualitySuspended2},
		{"Csus", "C", QualitySuspended4},
		{"Cmaj", "C", QualityMajor},
		{"Ebmin", "D#", QualityMinor},
		{"F#m", "F#", QualityMinor},
		{"Gb7", "F#", QualityDominant7},
		{"  Dm7  ", "D", QualityMinor7},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, err := Parse(tt.symbol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Root.String() != tt.root {
				t.Errorf("root: expected %s, got %s", tt.root, c.Root)
			}
			if c.Quality != tt.quality {
				t.Errorf("quality: expected %s, got %s", tt.quality, c.Quality)
			}
		})
	}
}

func TestParseTensions(t *testing.T) {
	tests := []struct {
		symbol   string
		expected []Tension
	}{
		{"C", []Tension{}},
		{"G7#11", []Tension{TensionSharp11}},
		{"G7b13", []Tension{TensionFlat13}},
		{"Cmaj9", []Tension{Tension9}},
		{"Dm11", []Tension{Tension11}},
		{"G13", []Tension{Tension13}},
		{"G7b9", []Tension{}},
		{"G7#9", []Tension{}},
		{"G7b13#11b13", []Tension{TensionSharp11, TensionFlat13}},
		{"C9add11add9", []Tension{Tension9, Tension11}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, err := Parse(tt.symbol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(c.Extensions, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, c.Extensions)
			}
		})
	}
}

func TestParseSlashBass(t *testing.T) {
	c, err := Parse("C/E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Bass == nil || c.Bass.String() != "E" {
		t.Fatalf("expected bass E, got %v", c.Bass)
	}
	if c.Symbol() != "C/E" {
		t.Errorf("expected C/E, got %s", c.Symbol())
	}

	c, err = Parse("Am7/Gb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Quality != QualityMinor7 || c.Bass.String() != "F#" {
		t.Errorf("unexpected chord %+v", c)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, symbol := range []string{"H7", "", "   ", "cm7", "7", "C/H", "C/", "C/E/G", "#C"} {
		t.Run(symbol, func(t *testing.T) {
			_, err := Parse(symbol)
			if !errors.Is(err, ErrInvalidChordSymbol) {
				t.Errorf("expected ErrInvalidChordSymbol for %q, got %v", symbol, err)
			}
		})
	}
}

func TestParseEveryRootAndQuality(t *testing.T) {
	for _, root := range ChromaticAlphabet() {
		for _, q := range Qualities() {
			symbol := root + q.Suffix()
			c, err := Parse(symbol)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", symbol, err)
			}
			if c.Root.String() != root {
				t.Errorf("%s: root %s", symbol, c.Root)
			}
			if c.Quality != q {
				t.Errorf("%s: quality %s, want %s", symbol, c.Quality, q)
			}

			again, err := Parse(c.Symbol())
			if err != nil {
				t.Fatalf("%s: reparse failed: %v", c.Symbol(), err)
			}
			if again.Root != c.Root || again.Quality != c.Quality {
				t.Errorf("%s: reparse gave %s", symbol, again.Symbol())
			}
		}
	}
}

func TestParseProgressionReportsIndex(t *testing.T) {
	_, err := ParseProgression([]string{"C", "Am", "X7"})
	if !errors.Is(err, ErrInvalidChordSymbol) {
		t.Fatalf("expected ErrInvalidChordSymbol, got %v", err)
	}
	if got := err.Error(); got != `chord 2: invalid chord symbol: "X7"` {
		t.Errorf("unexpected message %q", got)
	}
}
