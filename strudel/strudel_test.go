package strudel

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/IvanM-2157801/GeneticMusic/music"
)

func mustPhrase(t *testing.T, rhythm music.Rhythm, pitches ...music.NoteName) music.RhythmicPhrase {
	t.Helper()
	notes := make(music.Phrase, len(pitches))
	for i, p := range pitches {
		notes[i] = music.Note{Pitch: p, Octave: 4, Velocity: 1}
	}
	rp, err := music.NewRhythmicPhrase(rhythm, notes)
	if err != nil {
		t.Fatalf("NewRhythmicPhrase failed: %v", err)
	}
	return rp
}

// TestPhrasePatternGrouping verifies rhythm-aware beat grouping:
// subdivided beats bracket their notes, rest beats become "~"
func TestPhrasePatternGrouping(t *testing.T) {
	rp := mustPhrase(t, music.Rhythm{2, 1, 0, 3},
		music.C, music.D, music.E, music.F, music.G, music.A)

	got := PhrasePattern(rp, false, nil)
	want := "[c4 d4] e4 ~ [f4 g4 a4]"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestPhrasePatternDegrees verifies scale-degree output
func TestPhrasePatternDegrees(t *testing.T) {
	rp := mustPhrase(t, music.Rhythm{1, 1, 1}, music.C, music.E, music.G)

	got := PhrasePattern(rp, true, music.MajorScale)
	want := "0 2 4"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestPhrasePatternRestNotes verifies rest notes inside sounding beats
// render as "~" tokens within the bracket
func TestPhrasePatternRestNotes(t *testing.T) {
	rhythm := music.Rhythm{2}
	notes := music.Phrase{
		{Pitch: music.C, Octave: 4},
		{Pitch: music.Rest},
	}
	rp, err := music.NewRhythmicPhrase(rhythm, notes)
	if err != nil {
		t.Fatalf("NewRhythmicPhrase failed: %v", err)
	}

	got := PhrasePattern(rp, false, nil)
	if got != "[c4 ~]" {
		t.Errorf("Expected \"[c4 ~]\", got %q", got)
	}
}

// TestDrumPattern verifies drum sound expansion per subdivision
func TestDrumPattern(t *testing.T) {
	got := DrumPattern(music.Rhythm{1, 2, 0, 1}, "bd")
	want := "bd [bd bd] ~ bd"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestLayerExpressionMelodic verifies the full chain for a note layer
func TestLayerExpressionMelodic(t *testing.T) {
	layer := music.Layer{
		Name:       "lead",
		Instrument: "sawtooth",
		Rhythm:     music.Rhythm{1, 1},
		Phrase: music.Phrase{
			{Pitch: music.C, Octave: 4},
			{Pitch: music.G, Octave: 4},
		},
		ScaleSpec: "c:major",
		Gain:      0.5,
		LPF:       2000,
	}

	got, err := LayerExpression(layer)
	if err != nil {
		t.Fatalf("LayerExpression failed: %v", err)
	}
	want := `note("c4 g4").scale("c:major").s("sawtooth").gain(0.5).lpf(2000)`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestLayerExpressionDegreesWithShift verifies n() patterns shift in
// scale degrees
func TestLayerExpressionDegreesWithShift(t *testing.T) {
	layer := music.Layer{
		Name:            "bass",
		Instrument:      "sine",
		Rhythm:          music.Rhythm{1},
		Phrase:          music.Phrase{{Pitch: music.C, Octave: 4}},
		Scale:           music.MajorScale,
		ScaleSpec:       "c:major",
		OctaveShift:     -1,
		Gain:            0.6,
		UseScaleDegrees: true,
	}

	got, err := LayerExpression(layer)
	if err != nil {
		t.Fatalf("LayerExpression failed: %v", err)
	}
	want := `n("0").sub(7).scale("c:major").s("sine").gain(0.6)`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestLayerExpressionDrum verifies the drum chain with bank
func TestLayerExpressionDrum(t *testing.T) {
	layer := music.Layer{
		Name:      "kick",
		Rhythm:    music.Rhythm{1, 0, 1, 0},
		IsDrum:    true,
		DrumSound: "bd",
		Bank:      "RolandTR808",
		Gain:      0.9,
	}

	got, err := LayerExpression(layer)
	if err != nil {
		t.Fatalf("LayerExpression failed: %v", err)
	}
	want := `s("bd ~ bd ~").bank("RolandTR808").gain(0.9)`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestLayerExpressionMismatch verifies a phrase that disagrees with
// its rhythm is rejected
func TestLayerExpressionMismatch(t *testing.T) {
	layer := music.Layer{
		Name:       "broken",
		Instrument: "sine",
		Rhythm:     music.Rhythm{2, 2},
		Phrase:     make(music.Phrase, 3),
		Gain:       0.5,
	}
	if _, err := LayerExpression(layer); err == nil {
		t.Error("Expected error for phrase/rhythm mismatch")
	}
}

// TestScriptHeader verifies the tempo header counts cycles per minute
func TestScriptHeader(t *testing.T) {
	c := music.Composition{
		BPM: 120,
		Layers: []music.Layer{{
			Name: "kick", Rhythm: music.Rhythm{1}, IsDrum: true,
			DrumSound: "bd", Gain: 1,
		}},
	}

	script, err := Script(c)
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	if !strings.HasPrefix(script, "setcpm(30)\n") {
		t.Errorf("Expected setcpm(30) header, got %q", script)
	}
	if !strings.Contains(script, "$: s(\"bd\")") {
		t.Errorf("Expected layer line, got %q", script)
	}
}

// TestShareLink verifies the link decodes back to the script
func TestShareLink(t *testing.T) {
	script := "setcpm(30)\n\n$: s(\"bd\").gain(1)\n"
	link := ShareLink(script)

	if !strings.HasPrefix(link, ShareBaseURL) {
		t.Fatalf("Expected %q prefix, got %q", ShareBaseURL, link)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(link, ShareBaseURL))
	if err != nil {
		t.Fatalf("Link payload is not base64: %v", err)
	}
	if string(decoded) != script {
		t.Errorf("Expected round trip, got %q", decoded)
	}
}
