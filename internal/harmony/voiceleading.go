package harmony

import "fmt"

// maxRootMotion is a tritone; larger raw root distances are flagged
const maxRootMotion = 6

const voiceLeadingSuggestion = "consider an inversion or a passing chord"

// VoiceLeadingIssue is a flagged adjacent pair
type VoiceLeadingIssue struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	Distance int    `json:"distance"`
	Message  string `json:"message"`
}

// VoiceLeadingReport summarizes root motion across a progression
type VoiceLeadingReport struct {
	Valid       bool                `json:"valid"`
	Issues      []VoiceLeadingIssue `json:"issues"`
	Suggestions []string            `json:"suggestions"`
}

// CheckVoiceLeading parses the progression and checks root motion between adjacent chords
func CheckVoiceLeading(symbols []string) (VoiceLeadingReport, error) {
	chords, err := ParseProgression(symbols)
	if err != nil {
		return VoiceLeadingReport{}, err
	}
	return CheckChords(chords), nil
}

// CheckChords flags every adjacent pair whose raw root distance exceeds a tritone.
// The distance is the plain index difference, not the shorter way around the circle.
func CheckChords(chords []Chord) VoiceLeadingReport {
	report := VoiceLeadingReport{
		Issues:      []VoiceLeadingIssue{},
		Suggestions: []string{},
	}

	for i := 0; i+1 < len(chords); i++ {
		distance := int(chords[i+1].Root) - int(chords[i].Root)
		if distance < 0 {
			distance = -distance
		}
		if distance <= maxRootMotion {
			continue
		}

		report.Issues = append(report.Issues, VoiceLeadingIssue{
			From:     i,
			To:       i + 1,
			Distance: distance,
			Message: fmt.Sprintf("root motion too wide: %s -> %s (%d semitones)",
				chords[i].Symbol(), chords[i+1].Symbol(), distance),
		})
		report.Suggestions = append(report.Suggestions, voiceLeadingSuggestion)
	}

	report.Valid = len(report.Issues) == 0
	return report
}
