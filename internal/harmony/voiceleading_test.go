package harmony

import (
	"errors"
	"testing"
)

func TestCheckVoiceLeading(t *testing.T) {
	tests := []struct {
		name      string
		symbols   []string
		valid     bool
		flagged   [][2]int
		distances []int
	}{
		{name: "tritone is allowed", symbols: []string{"C", "F#"}, valid: true},
		{name: "flat spelling of tritone", symbols: []string{"C", "Gb"}, valid: true},
		{name: "eight semitones flagged", symbols: []string{"C", "G#"}, valid: false, flagged: [][2]int{{0, 1}}, distances: []int{8}},
		{name: "raw distance not circular", symbols: []string{"C", "B"}, valid: false, flagged: [][2]int{{0, 1}}, distances: []int{11}},
		{name: "descending raw distance", symbols: []string{"A", "C"}, valid: false, flagged: [][2]int{{0, 1}}, distances: []int{9}},
		{name: "V to I falls seven", symbols: []string{"Dm7", "G7", "Cmaj7"}, valid: false, flagged: [][2]int{{1, 2}}, distances: []int{7}},
		{name: "stepwise", symbols: []string{"C", "Dm", "Em", "F"}, valid: true},
		{name: "C up to G", symbols: []string{"F", "C", "G"}, valid: false, flagged: [][2]int{{1, 2}}, distances: []int{7}},
		{name: "single chord", symbols: []string{"C"}, valid: true},
		{name: "empty", symbols: []string{}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CheckVoiceLeading(tt.symbols)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Valid != tt.valid {
				t.Errorf("valid: expected %v, got %v", tt.valid, report.Valid)
			}
			if len(report.Issues) != len(tt.flagged) {
				t.Fatalf("expected %d issues, got %d", len(tt.flagged), len(report.Issues))
			}
			if len(report.Suggestions) != len(report.Issues) {
				t.Errorf("expected one suggestion per issue")
			}
			for i, issue := range report.Issues {
				if issue.From != tt.flagged[i][0] || issue.To != tt.flagged[i][1] {
					t.Errorf("issue %d: expected %v, got %d->%d", i, tt.flagged[i], issue.From, issue.To)
				}
				if issue.Distance != tt.distances[i] {
					t.Errorf("issue %d: expected distance %d, got %d", i, tt.distances[i], issue.Distance)
				}
			}
		})
	}
}

func TestCheckVoiceLeadingInvalidChord(t *testing.T) {
	_, err := CheckVoiceLeading([]string{"C", "H7"})
	if !errors.Is(err, ErrInvalidChordSymbol) {
		t.Errorf("expected ErrInvalidChordSymbol, got %v", err)
	}
}
