package harmony

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPitchClass is returned when a note or key name is not a pitch class
var ErrInvalidPitchClass = errors.New("invalid pitch class")

// chromaticAlphabet is the sharp-based alphabet all pitch arithmetic runs over
var chromaticAlphabet = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Natural letter offsets from C
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// PitchClass is an index into the chromatic alphabet (0 = C, 11 = B)
type PitchClass int

// ChromaticAlphabet returns the 12 pitch-class names in index order
func ChromaticAlphabet() []string {
	names := make([]string, len(chromaticAlphabet))
	copy(names, chromaticAlphabet[:])
	return names
}

// ParsePitchClass converts a note name like "C", "F#" or "Bb" into a PitchClass.
// Flats are folded onto the sharp alphabet.
func ParsePitchClass(name string) (PitchClass, error) {
	if len(name) == 0 || len(name) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitchClass, name)
	}

	offset, ok := letterOffsets[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitchClass, name)
	}

	if len(name) == 2 {
		switch name[1] {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPitchClass, name)
		}
	}

	return PitchClass(0).Transpose(offset), nil
}

// MustPitchClass is ParsePitchClass for compile-time constants; it panics on bad input
func MustPitchClass(name string) PitchClass {
	pc, err := ParsePitchClass(name)
	if err != nil {
		panic(err)
	}
	return pc
}

// Transpose moves the pitch class by the given number of semitones, wrapping mod 12
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(((int(p)+semitones)%12 + 12) % 12)
}

// Interval returns the ascending distance in semitones from p up to other (0-11)
func (p PitchClass) Interval(other PitchClass) int {
	return int(other.Transpose(-int(p)))
}

func (p PitchClass) String() string {
	return chromaticAlphabet[int(p.Transpose(0))]
}

// MarshalJSON encodes the pitch class by name
func (p PitchClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts a note name
func (p *PitchClass) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	pc, err := ParsePitchClass(name)
	if err != nil {
		return err
	}
	*p = pc
	return nil
}
