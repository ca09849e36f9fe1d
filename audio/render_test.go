package audio

import (
	"testing"

	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// TestNoteFreq verifies the equal temperament anchor points
func TestNoteFreq(t *testing.T) {
	if got := NoteFreq(69); got < 439.99 || got > 440.01 {
		t.Errorf("Expected A4 at 440Hz, got %f", got)
	}
	if got := NoteFreq(57); got < 219.99 || got > 220.01 {
		t.Errorf("Expected A3 at 220Hz, got %f", got)
	}
	if got := NoteFreq(-1); got != 0 {
		t.Errorf("Expected 0 for out-of-range note, got %f", got)
	}
	if got := NoteFreq(128); got != 0 {
		t.Errorf("Expected 0 for out-of-range note, got %f", got)
	}
}

func testComposition() music.Composition {
	return music.Composition{
		BPM: 120,
		Layers: []music.Layer{
			{
				Name: "kick", Rhythm: music.Rhythm{1, 0, 1, 0},
				IsDrum: true, DrumSound: "bd", Gain: 0.9,
			},
			{
				Name: "lead", Instrument: "sine",
				Rhythm: music.Rhythm{1, 1, 0, 2},
				Phrase: music.Phrase{
					{Pitch: music.C, Octave: 4, Duration: 1, Velocity: 0.8},
					{Pitch: music.E, Octave: 4, Duration: 1, Velocity: 0.8},
					{Pitch: music.G, Octave: 4, Duration: 0.5, Velocity: 0.8},
					{Pitch: music.Rest, Duration: 0.5},
				},
				Gain: 0.5,
			},
		},
	}
}

// TestRenderComposition verifies the buffer length covers all beats
// and carries signal
func TestRenderComposition(t *testing.T) {
	buf := RenderComposition(testComposition())
	if len(buf) == 0 {
		t.Fatal("Expected non-empty render")
	}

	// 4 beats at 120 BPM is 2 seconds plus decay headroom
	minSamples := 2 * parameter.AudioSampleRate
	if len(buf) < minSamples {
		t.Errorf("Expected at least %d samples, got %d", minSamples, len(buf))
	}

	peak := 0.0
	for _, s := range buf {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}
	if peak == 0 {
		t.Error("Expected audible signal, buffer is silent")
	}
	if peak > 1.0 {
		t.Errorf("Expected normalized peak at most 1.0, got %f", peak)
	}
}

// TestRenderEmptyComposition verifies a silent composition renders to nothing
func TestRenderEmptyComposition(t *testing.T) {
	if buf := RenderComposition(music.Composition{BPM: 120}); len(buf) != 0 {
		t.Errorf("Expected empty render, got %d samples", len(buf))
	}
}

// TestBufferStreamerLoops verifies the streamer plays the buffer the
// configured number of times and then stops
func TestBufferStreamerLoops(t *testing.T) {
	bs := &bufferStreamer{
		data:   make(floatBuffer, 100),
		volume: 1,
		loops:  3,
	}

	total := 0
	out := make([][2]float64, 64)
	for {
		n, ok := bs.Stream(out)
		total += n
		if !ok {
			break
		}
	}
	if total != 300 {
		t.Errorf("Expected 300 samples over 3 loops, got %d", total)
	}
}

// TestDrumHitKnownSounds verifies each drum sound synthesizes
func TestDrumHitKnownSounds(t *testing.T) {
	for _, sound := range []string{"bd", "sd", "cp", "hh", "rd", "unknown"} {
		if buf := drumHit(sound); len(buf) == 0 {
			t.Errorf("Expected samples for drum sound %q", sound)
		}
	}
}

// TestLoadPlayerConfigEnv verifies environment overrides
func TestLoadPlayerConfigEnv(t *testing.T) {
	t.Setenv("GENETIC_MUSIC_VOLUME", "80")
	t.Setenv("GENETIC_MUSIC_LOOPS", "4")

	cfg := LoadPlayerConfig()
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.Loops != 4 {
		t.Errorf("Expected 4 loops, got %d", cfg.Loops)
	}

	t.Setenv("GENETIC_MUSIC_VOLUME", "250")
	if cfg := LoadPlayerConfig(); cfg.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
}
