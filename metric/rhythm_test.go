package metric

import (
	"testing"

	"github.com/IvanM-2157801/GeneticMusic/music"
)

func mustRhythm(t *testing.T, s string) music.Rhythm {
	t.Helper()
	r, err := music.ParseRhythm(s)
	if err != nil {
		t.Fatalf("ParseRhythm(%q) failed: %v", s, err)
	}
	return r
}

// TestDensityExtremes verifies the documented anchor values
func TestDensityExtremes(t *testing.T) {
	tests := []struct {
		rhythm string
		want   float64
	}{
		{"00000000", 0.0},
		{"44444444", 1.0},
		{"22222222", 0.5},
	}
	for _, tt := range tests {
		if got := Density(mustRhythm(t, tt.rhythm)); got != tt.want {
			t.Errorf("Density(%q): expected %f, got %f", tt.rhythm, tt.want, got)
		}
	}
	if got := Density(nil); got != 0 {
		t.Errorf("Density(empty): expected 0, got %f", got)
	}
}

// TestComplexity verifies distinct-symbol counting and the
// single-symbol minimum
func TestComplexity(t *testing.T) {
	if got := Complexity(mustRhythm(t, "1111")); got != 0.2 {
		t.Errorf("Expected single-symbol minimum 0.2, got %f", got)
	}
	if got := Complexity(mustRhythm(t, "01234012")); got != 1.0 {
		t.Errorf("Expected full alphabet 1.0, got %f", got)
	}
}

// TestSyncopation verifies transition counting and the short-rhythm default
func TestSyncopation(t *testing.T) {
	if got := Syncopation(mustRhythm(t, "1111")); got != 0 {
		t.Errorf("Expected 0 for constant rhythm, got %f", got)
	}
	if got := Syncopation(mustRhythm(t, "1212")); got != 1 {
		t.Errorf("Expected 1 for fully alternating rhythm, got %f", got)
	}
	if got := Syncopation(mustRhythm(t, "1")); got != 0 {
		t.Errorf("Expected 0 for single beat, got %f", got)
	}
}

// TestRestRatio verifies rest counting over the whole range
func TestRestRatio(t *testing.T) {
	tests := []struct {
		rhythm string
		want   float64
	}{
		{"0000", 1.0},
		{"1111", 0.0},
		{"1010", 0.5},
	}
	for _, tt := range tests {
		if got := RestRatio(mustRhythm(t, tt.rhythm)); got != tt.want {
			t.Errorf("RestRatio(%q): expected %f, got %f", tt.rhythm, tt.want, got)
		}
	}
}

// TestStrongBeatEmphasis verifies downbeat and midpoint scoring
func TestStrongBeatEmphasis(t *testing.T) {
	tests := []struct {
		rhythm string
		want   float64
	}{
		{"10001000", 1.0}, // both strong beats sound
		{"10000000", 0.5}, // downbeat only
		{"00001000", 0.5}, // midpoint only
		{"01110111", 0.0},
	}
	for _, tt := range tests {
		if got := StrongBeatEmphasis(mustRhythm(t, tt.rhythm)); got != tt.want {
			t.Errorf("StrongBeatEmphasis(%q): expected %f, got %f", tt.rhythm, tt.want, got)
		}
	}
}

// TestBackbeatEmphasis verifies beats three and seven of eight
func TestBackbeatEmphasis(t *testing.T) {
	tests := []struct {
		rhythm string
		want   float64
	}{
		{"00100010", 1.0},
		{"00100000", 0.5},
		{"10001000", 0.0},
		{"0101", 1.0}, // four-beat form uses beats two and four
		{"01", 0.0},   // too short to have a backbeat
	}
	for _, tt := range tests {
		if got := BackbeatEmphasis(mustRhythm(t, tt.rhythm)); got != tt.want {
			t.Errorf("BackbeatEmphasis(%q): expected %f, got %f", tt.rhythm, tt.want, got)
		}
	}
}

// TestOffbeatEmphasis verifies subdivided offbeats score
func TestOffbeatEmphasis(t *testing.T) {
	if got := OffbeatEmphasis(mustRhythm(t, "02020202")); got != 1.0 {
		t.Errorf("Expected 1.0 for subdivided offbeats, got %f", got)
	}
	if got := OffbeatEmphasis(mustRhythm(t, "20202020")); got != 0.0 {
		t.Errorf("Expected 0.0 for onbeat-only subdivision, got %f", got)
	}
}

// TestConsistency verifies repetition scoring
func TestConsistency(t *testing.T) {
	uniform := Consistency(mustRhythm(t, "22222222"))
	varied := Consistency(mustRhythm(t, "01234123"))
	if uniform <= varied {
		t.Errorf("Expected uniform rhythm more consistent: %f vs %f", uniform, varied)
	}
	if got := Consistency(mustRhythm(t, "1")); got != 0.5 {
		t.Errorf("Expected neutral 0.5 for single beat, got %f", got)
	}
}

// TestGroove verifies busy-sparse alternation scoring
func TestGroove(t *testing.T) {
	alternating := Groove(mustRhythm(t, "21212121"))
	flat := Groove(mustRhythm(t, "22222222"))
	if alternating <= flat {
		t.Errorf("Expected alternating rhythm groovier: %f vs %f", alternating, flat)
	}
	if got := Groove(mustRhythm(t, "212")); got != 0 {
		t.Errorf("Expected 0 for rhythm shorter than four beats, got %f", got)
	}
}

// TestMetricsStayInRange verifies every metric stays within [0,1]
// across a spread of genomes
func TestMetricsStayInRange(t *testing.T) {
	rhythms := []string{
		"00000000", "44444444", "10001000", "02020202",
		"12340123", "11111111", "40404040", "1", "21",
	}
	metrics := map[string]func(music.Rhythm) float64{
		"density":              Density,
		"complexity":           Complexity,
		"syncopation":          Syncopation,
		"groove":               Groove,
		"consistency":          Consistency,
		"rest_ratio":           RestRatio,
		"offbeat_emphasis":     OffbeatEmphasis,
		"strong_beat_emphasis": StrongBeatEmphasis,
		"backbeat_emphasis":    BackbeatEmphasis,
		"single_hit_ratio":     SingleHitRatio,
		"simple_subdivision":   SimpleSubdivisionRatio,
	}

	for _, s := range rhythms {
		r := mustRhythm(t, s)
		for name, fn := range metrics {
			if got := fn(r); got < 0 || got > 1 {
				t.Errorf("%s(%q) = %f outside [0,1]", name, s, got)
			}
		}
	}
}
