package music

import "fmt"

// Phrase is an ordered sequence of notes
type Phrase []Note

// Clone returns an independent copy
func (p Phrase) Clone() Phrase {
	out := make(Phrase, len(p))
	copy(out, p)
	return out
}

// Sounding returns the notes that are not rests
func (p Phrase) Sounding() []Note {
	out := make([]Note, 0, len(p))
	for _, n := range p {
		if !n.IsRest() {
			out = append(out, n)
		}
	}
	return out
}

// RhythmicPhrase pairs a phrase with the rhythm that shaped it.
// Construction fails unless the note count matches the rhythm, so a
// mismatched pair cannot exist once built. Note durations are restamped
// from the rhythm; evolution touches pitch only.
type RhythmicPhrase struct {
	Rhythm Rhythm
	Notes  Phrase
}

// NewRhythmicPhrase validates and builds the pair
func NewRhythmicPhrase(rhythm Rhythm, notes Phrase) (RhythmicPhrase, error) {
	want := rhythm.NoteCount()
	if len(notes) != want {
		return RhythmicPhrase{}, fmt.Errorf("phrase has %d notes, rhythm %q implies %d", len(notes), rhythm.String(), want)
	}
	stamped := notes.Clone()
	for i, d := range rhythm.Durations() {
		stamped[i].Duration = d
	}
	return RhythmicPhrase{Rhythm: rhythm.Clone(), Notes: stamped}, nil
}
