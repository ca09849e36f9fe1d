package music

import (
	"testing"
)

// TestNewRhythmicPhrase verifies note-count validation at construction
func TestNewRhythmicPhrase(t *testing.T) {
	rhythm := Rhythm{2, 1, 0, 3}

	notes := make(Phrase, 6)
	for i := range notes {
		notes[i] = Note{Pitch: C, Octave: 4, Velocity: 1}
	}

	rp, err := NewRhythmicPhrase(rhythm, notes)
	if err != nil {
		t.Fatalf("Expected valid pair, got error: %v", err)
	}
	if len(rp.Notes) != 6 {
		t.Errorf("Expected 6 notes, got %d", len(rp.Notes))
	}

	// Durations are restamped from the rhythm
	if rp.Notes[0].Duration != 0.5 {
		t.Errorf("Expected duration 0.5 for first note, got %f", rp.Notes[0].Duration)
	}
	if rp.Notes[2].Duration != 1.0 {
		t.Errorf("Expected duration 1.0 for third note, got %f", rp.Notes[2].Duration)
	}
}

// TestNewRhythmicPhraseCountMismatch verifies a wrong note count is rejected
func TestNewRhythmicPhraseCountMismatch(t *testing.T) {
	rhythm := Rhythm{2, 1}
	notes := make(Phrase, 5)

	if _, err := NewRhythmicPhrase(rhythm, notes); err == nil {
		t.Error("Expected error for 5 notes against rhythm implying 3")
	}
}

// TestNewRhythmicPhraseAllRest verifies the all-rest rhythm pairs with
// an empty phrase
func TestNewRhythmicPhraseAllRest(t *testing.T) {
	rhythm := Rhythm{0, 0, 0, 0}

	if _, err := NewRhythmicPhrase(rhythm, Phrase{}); err != nil {
		t.Errorf("Expected empty phrase to pair with all-rest rhythm, got %v", err)
	}
	if _, err := NewRhythmicPhrase(rhythm, make(Phrase, 1)); err == nil {
		t.Error("Expected error pairing a note with an all-rest rhythm")
	}
}

// TestPhraseSounding verifies rests are filtered out
func TestPhraseSounding(t *testing.T) {
	p := Phrase{
		{Pitch: C, Octave: 4},
		{Pitch: Rest},
		{Pitch: G, Octave: 4},
	}
	sounding := p.Sounding()
	if len(sounding) != 2 {
		t.Errorf("Expected 2 sounding notes, got %d", len(sounding))
	}
}

// TestNoteMIDIPitch verifies MIDI conversion and the rest sentinel
func TestNoteMIDIPitch(t *testing.T) {
	tests := []struct {
		note Note
		want int
	}{
		{Note{Pitch: C, Octave: 4}, 60},
		{Note{Pitch: A, Octave: 4}, 69},
		{Note{Pitch: Rest}, -1},
	}
	for _, tt := range tests {
		if got := tt.note.MIDIPitch(); got != tt.want {
			t.Errorf("MIDIPitch(%v): expected %d, got %d", tt.note, tt.want, got)
		}
	}
}

// TestScaleDegreeOf verifies scale-relative degree lookup
func TestScaleDegreeOf(t *testing.T) {
	if got := MajorScale.DegreeOf(G); got != 4 {
		t.Errorf("Expected G at degree 4 of the major scale, got %d", got)
	}
	if got := MajorScale.DegreeOf(CS); got != -1 {
		t.Errorf("Expected -1 for pitch outside the scale, got %d", got)
	}
}
