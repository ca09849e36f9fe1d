package parameter

// Rhythm Genome Bounds
const (
	// DefaultBeatsPerBar for 4/4-derived eight-beat patterns
	DefaultBeatsPerBar = 8

	// DefaultBars per evolved pattern
	DefaultBars = 1
)

// Note Generation Bounds
const (
	// MinOctave and MaxOctave bound pitch mutation
	MinOctave = 1
	MaxOctave = 7

	// DefaultOctaveLow and DefaultOctaveHigh are the sampling range for
	// fresh melodic material
	DefaultOctaveLow  = 3
	DefaultOctaveHigh = 5

	// RestProbability when sampling an unconstrained random note
	RestProbability = 0.4
)

// Composition Defaults
const (
	// DefaultBPM for rendered compositions
	DefaultBPM = 120

	// DefaultGain for a layer's output level
	DefaultGain = 0.5
)
