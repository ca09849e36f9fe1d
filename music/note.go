package music

// NoteName identifies a pitch class as a semitone offset from C
type NoteName int

const (
	C NoteName = iota
	CS
	D
	DS
	E
	F
	FS
	G
	GS
	A
	AS
	B
	PitchClassCount
)

// Rest is the non-sounding sentinel pitch
const Rest NoteName = -1

func (n NoteName) String() string {
	names := [...]string{"c", "cs", "d", "ds", "e", "f", "fs", "g", "gs", "a", "as", "b"}
	if n >= 0 && int(n) < len(names) {
		return names[n]
	}
	return "~"
}

// Note is a single evolved event: a pitch at an octave, lasting a
// fraction of a beat. Velocity is kept for synthesis, not evolution.
type Note struct {
	Pitch    NoteName
	Octave   int
	Duration float64 // in beats
	Velocity float64
}

// IsRest reports whether the note is a placeholder with no sounding pitch
func (n Note) IsRest() bool {
	return n.Pitch == Rest
}

// MIDIPitch returns the MIDI note number, or -1 for rests
func (n Note) MIDIPitch() int {
	if n.IsRest() {
		return -1
	}
	return (n.Octave+1)*12 + int(n.Pitch)
}
