package music

import (
	"fmt"
	"strings"
)

// Rhythm encodes subdivisions per beat as digits:
// 0 = rest, 1 = single note, 2-4 = the beat split into that many notes.
// Length is bars x beats per bar and never changes under evolution.
type Rhythm []int

// ParseRhythm converts a digit string like "21302140" into a Rhythm
func ParseRhythm(s string) (Rhythm, error) {
	if s == "" {
		return nil, fmt.Errorf("empty rhythm string")
	}
	r := make(Rhythm, len(s))
	for i, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("rhythm symbol %q at beat %d is not a digit", c, i)
		}
		d := int(c - '0')
		if d > MaxSubdivision {
			return nil, fmt.Errorf("rhythm symbol %d at beat %d exceeds max subdivision %d", d, i, MaxSubdivision)
		}
		r[i] = d
	}
	return r, nil
}

// MaxSubdivision is the densest supported beat: four notes per beat
const MaxSubdivision = 4

func (r Rhythm) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, d := range r {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// NoteCount returns the number of sounding notes the rhythm implies
func (r Rhythm) NoteCount() int {
	total := 0
	for _, d := range r {
		total += d
	}
	return total
}

// Beats returns the number of beat slots
func (r Rhythm) Beats() int {
	return len(r)
}

// Validate checks every digit is within the 0..max alphabet
func (r Rhythm) Validate(max int) error {
	if len(r) == 0 {
		return fmt.Errorf("rhythm has no beats")
	}
	for i, d := range r {
		if d < 0 || d > max {
			return fmt.Errorf("rhythm digit %d at beat %d outside alphabet 0..%d", d, i, max)
		}
	}
	return nil
}

// Clone returns an independent copy
func (r Rhythm) Clone() Rhythm {
	out := make(Rhythm, len(r))
	copy(out, r)
	return out
}

// Durations expands the rhythm into one per-note duration in beats.
// A digit d contributes d entries of 1/d beat; rest beats contribute none.
func (r Rhythm) Durations() []float64 {
	out := make([]float64, 0, r.NoteCount())
	for _, d := range r {
		for i := 0; i < d; i++ {
			out = append(out, 1.0/float64(d))
		}
	}
	return out
}
