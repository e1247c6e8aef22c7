package harmony

import "fmt"

const (
	midiMin = 0
	midiMax = 127
)

// Chord-tone intervals above the root, per quality
var qualityIntervals = map[Quality][]int{
	QualityMajor:          {0, 4, 7},
	QualityMinor:          {0, 3, 7},
	QualityDiminished:     {0, 3, 6},
	QualityAugmented:      {0, 4, 8},
	QualityMajor7:         {0, 4, 7, 11},
	QualityMinor7:         {0, 3, 7, 10},
	QualityDominant7:      {0, 4, 7, 10},
	QualityHalfDiminished: {0, 3, 6, 10},
	QualityDiminished7:    {0, 3, 6, 9},
	QualitySuspended4:     {0, 5, 7},
	QualitySuspended2:     {0, 2, 7},
}

// Extensions are stacked above the octave
var tensionIntervals = map[Tension]int{
	Tension9:       14,
	Tension11:      17,
	Tension13:      21,
	TensionSharp11: 18,
	TensionFlat13:  20,
}

// Mode and scale step patterns from the root
var scaleIntervals = map[string][]int{
	"ionian":     {0, 2, 4, 5, 7, 9, 11},
	"dorian":     {0, 2, 3, 5, 7, 9, 10},
	"phrygian":   {0, 1, 3, 5, 7, 8, 10},
	"lydian":     {0, 2, 4, 6, 7, 9, 11},
	"mixolydian": {0, 2, 4, 5, 7, 9, 10},
	"aeolian":    {0, 2, 3, 5, 7, 8, 10},
	"locrian":    {0, 1, 3, 5, 6, 8, 10},
	"altered":    {0, 1, 3, 4, 6, 8, 10},
	"chromatic":  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

func intervalsFor(q Quality) []int {
	if iv, ok := qualityIntervals[q]; ok {
		return iv
	}
	return qualityIntervals[QualityMajor]
}

// Notes spells the chord tones of c from the root up. Extensions and slash bass are not included.
func Notes(c Chord) []PitchClass {
	iv := intervalsFor(c.Quality)
	notes := make([]PitchClass, len(iv))
	for i, semitones := range iv {
		notes[i] = c.Root.Transpose(semitones)
	}
	return notes
}

// Inversions lists the root-position symbol followed by the chord over each upper chord tone
func Inversions(c Chord) []string {
	root := chordOn(c.Root, c.Quality)
	notes := Notes(c)
	out := make([]string, 0, len(notes))
	out = append(out, root.Symbol())
	for _, n := range notes[1:] {
		bass := n
		inv := root
		inv.Bass = &bass
		out = append(out, inv.Symbol())
	}
	return out
}

// MIDINotes voices c with its root in the given octave (C4 = 60). Extensions are
// stacked above the octave and a slash bass is placed one octave below the root.
// Notes outside 0-127 are dropped.
func MIDINotes(c Chord, octave int) ([]int, error) {
	rootMIDI := (octave+1)*12 + int(c.Root)

	var notes []int
	for _, semitones := range intervalsFor(c.Quality) {
		if n := rootMIDI + semitones; inMIDIRange(n) {
			notes = append(notes, n)
		}
	}
	for _, t := range c.Extensions {
		if n := rootMIDI + tensionIntervals[t]; inMIDIRange(n) {
			notes = append(notes, n)
		}
	}

	if c.Bass != nil {
		if n := octave*12 + int(*c.Bass); inMIDIRange(n) {
			notes = append([]int{n}, notes...)
		}
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("no playable MIDI notes for %s in octave %d", c.Symbol(), octave)
	}
	return notes, nil
}

func inMIDIRange(n int) bool {
	return n >= midiMin && n <= midiMax
}

// ScaleNotes spells the named scale from root. Unknown names fall back to ionian.
func ScaleNotes(root PitchClass, scale string) []PitchClass {
	steps, ok := scaleIntervals[scale]
	if !ok {
		steps = scaleIntervals["ionian"]
	}
	notes := make([]PitchClass, len(steps))
	for i, s := range steps {
		notes[i] = root.Transpose(s)
	}
	return notes
}

// PitchClassNames converts pitch classes to their alphabet names
func PitchClassNames(pcs []PitchClass) []string {
	names := make([]string, len(pcs))
	for i, p := range pcs {
		names[i] = p.String()
	}
	return names
}
