package music

import "math/rand/v2"

// Scale is the set of pitch classes melodies draw from
type Scale []NoteName

// Contains reports whether the pitch class is in the scale
func (s Scale) Contains(n NoteName) bool {
	for _, p := range s {
		if p == n {
			return true
		}
	}
	return false
}

// DegreeOf maps a pitch class onto its 0-based degree within the
// scale, or -1 when the pitch is outside it
func (s Scale) DegreeOf(n NoteName) int {
	for i, p := range s {
		if p == n {
			return i
		}
	}
	return -1
}

// Common scales rooted at C; transposition happens at serialization
// time through the layer's scale spec.
var (
	MajorScale = Scale{C, D, E, F, G, A, B}
	MinorScale = Scale{C, D, DS, F, G, GS, AS}
	Pentatonic = Scale{C, D, E, G, A}
	BluesScale = Scale{C, DS, F, FS, G, AS}
)

// RandomScaleSpec picks a Strudel scale spec like "g:minor"
func RandomScaleSpec(rng *rand.Rand) string {
	roots := []string{"c", "d", "e", "f", "g", "a", "b"}
	modes := []string{"major", "minor"}
	return roots[rng.IntN(len(roots))] + ":" + modes[rng.IntN(len(modes))]
}
