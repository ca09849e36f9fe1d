package composer

import (
	"fmt"
	"sort"

	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// Band presets pair each instrumental role with the rhythm and melody
// profiles that suit the genre. Drum kits use single-point rhythm
// crossover so evolved backbeats survive breeding intact.

// PopBand is a four-on-the-floor kit with bass, keys and a lead
func PopBand() Config {
	return Config{
		Layers: []LayerConfig{
			{Name: "kick", RhythmProfile: "kick", IsDrum: true, DrumSound: "bd",
				Bank: "RolandTR909", Gain: 0.9, SegmentCrossover: true},
			{Name: "snare", RhythmProfile: "snare", IsDrum: true, DrumSound: "sd",
				Bank: "RolandTR909", Gain: 0.7, SegmentCrossover: true},
			{Name: "hihat", RhythmProfile: "hihat", IsDrum: true, DrumSound: "hh",
				Bank: "RolandTR909", Gain: 0.4, SegmentCrossover: true},
			{Name: "bass", Instrument: "sawtooth", RhythmProfile: "bass",
				MelodyProfile: "stable", OctaveLow: 2, OctaveHigh: 3,
				Gain: 0.6, LPF: 800},
			{Name: "keys", Instrument: "gm_epiano1", RhythmProfile: "pop",
				MelodyProfile: "pop", OctaveLow: 3, OctaveHigh: 5,
				Gain: 0.5, LPF: 3000, UseScaleDegrees: true},
			{Name: "lead", Instrument: "triangle", RhythmProfile: "pop",
				MelodyProfile: "melodic", OctaveLow: 4, OctaveHigh: 6,
				Gain: 0.5, LPF: 4000, UseScaleDegrees: true},
		},
		BPM:       120,
		Scale:     music.MajorScale,
		ScaleSpec: "c:major",
	}
}

// JazzBand leans on syncopation and wider interval content
func JazzBand() Config {
	return Config{
		Layers: []LayerConfig{
			{Name: "ride", RhythmProfile: "jazz", IsDrum: true, DrumSound: "rd",
				Bank: "RolandTR707", Gain: 0.5},
			{Name: "snare", RhythmProfile: "percussion", IsDrum: true, DrumSound: "sd",
				Bank: "RolandTR707", Gain: 0.4, SegmentCrossover: true},
			{Name: "bass", Instrument: "sine", RhythmProfile: "jazz",
				MelodyProfile: "stable", OctaveLow: 2, OctaveHigh: 3,
				Gain: 0.6, LPF: 700},
			{Name: "piano", Instrument: "piano", RhythmProfile: "jazz",
				MelodyProfile: "jazz", OctaveLow: 3, OctaveHigh: 5,
				Gain: 0.5, UseScaleDegrees: true},
			{Name: "lead", Instrument: "gm_muted_trumpet", RhythmProfile: "jazz",
				MelodyProfile: "jazz", OctaveLow: 4, OctaveHigh: 6,
				Gain: 0.5},
		},
		BPM:       140,
		Scale:     music.MinorScale,
		ScaleSpec: "d:minor",
	}
}

// FunkBand pushes offbeat emphasis and tight single hits
func FunkBand() Config {
	return Config{
		Layers: []LayerConfig{
			{Name: "kick", RhythmProfile: "funk", IsDrum: true, DrumSound: "bd",
				Bank: "RolandTR808", Gain: 0.9, SegmentCrossover: true},
			{Name: "snare", RhythmProfile: "snare", IsDrum: true, DrumSound: "sd",
				Bank: "RolandTR808", Gain: 0.7, SegmentCrossover: true},
			{Name: "hihat", RhythmProfile: "funk", IsDrum: true, DrumSound: "hh",
				Bank: "RolandTR808", Gain: 0.4},
			{Name: "bass", Instrument: "sawtooth", RhythmProfile: "funk",
				MelodyProfile: "stable", OctaveLow: 2, OctaveHigh: 3,
				Gain: 0.7, LPF: 900},
			{Name: "clav", Instrument: "square", RhythmProfile: "funk",
				MelodyProfile: "melodic", OctaveLow: 3, OctaveHigh: 5,
				Gain: 0.5, LPF: 2500, UseScaleDegrees: true},
		},
		BPM:       104,
		Scale:     music.BluesScale,
		ScaleSpec: "e:minor",
	}
}

// AmbientBand rewards space over motion; sparse or silent layers are a
// valid outcome here, not a failed run
func AmbientBand() Config {
	return Config{
		Layers: []LayerConfig{
			{Name: "pad", Instrument: "sawtooth", RhythmProfile: "ambient",
				MelodyProfile: "pad", OctaveLow: 3, OctaveHigh: 4,
				Gain: 0.4, LPF: 1200, UseScaleDegrees: true},
			{Name: "drone", Instrument: "sine", RhythmProfile: "ambient",
				MelodyProfile: "ambient", OctaveLow: 2, OctaveHigh: 3,
				Gain: 0.5, LPF: 600},
			{Name: "sparkle", Instrument: "triangle", RhythmProfile: "ambient",
				MelodyProfile: "ambient", OctaveLow: 5, OctaveHigh: 6,
				Gain: 0.3, LPF: 5000, UseScaleDegrees: true},
		},
		BPM:       70,
		Scale:     music.Pentatonic,
		ScaleSpec: "a:minor",
	}
}

// ElectronicBand is a driving machine groove with an arpeggiated top
func ElectronicBand() Config {
	return Config{
		Layers: []LayerConfig{
			{Name: "kick", RhythmProfile: "kick", IsDrum: true, DrumSound: "bd",
				Bank: "RolandTR909", Gain: 1.0, SegmentCrossover: true},
			{Name: "hihat", RhythmProfile: "electronic", IsDrum: true, DrumSound: "hh",
				Bank: "RolandTR909", Gain: 0.35},
			{Name: "clap", RhythmProfile: "snare", IsDrum: true, DrumSound: "cp",
				Bank: "RolandTR909", Gain: 0.6, SegmentCrossover: true},
			{Name: "bass", Instrument: "sawtooth", RhythmProfile: "electronic",
				MelodyProfile: "stable", OctaveLow: 2, OctaveHigh: 3,
				Gain: 0.7, LPF: 700},
			{Name: "arp", Instrument: "square", RhythmProfile: "arp",
				MelodyProfile: "melodic", OctaveLow: 4, OctaveHigh: 6,
				Gain: 0.45, LPF: 3500, UseScaleDegrees: true},
		},
		BPM:       128,
		Scale:     music.MinorScale,
		ScaleSpec: "f:minor",
	}
}

// bands maps preset names to their builders
var bands = map[string]func() Config{
	"pop":        PopBand,
	"jazz":       JazzBand,
	"funk":       FunkBand,
	"ambient":    AmbientBand,
	"electronic": ElectronicBand,
}

// BandNames lists the available presets in sorted order
func BandNames() []string {
	names := make([]string, 0, len(bands))
	for name := range bands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Band returns the named preset configuration
func Band(name string) (Config, error) {
	builder, ok := bands[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown band %q, have %v", name, BandNames())
	}
	cfg := builder()
	if cfg.BPM == 0 {
		cfg.BPM = parameter.DefaultBPM
	}
	return cfg, nil
}
