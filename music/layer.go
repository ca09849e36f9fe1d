package music

// Layer holds one finished slot of a composition: the evolved rhythm,
// its phrase when melodic, and the output parameters the serializer and
// synthesizer consume. Built once by the composer, immutable after.
type Layer struct {
	Name       string
	Instrument string
	Rhythm     Rhythm
	Phrase     Phrase // empty for drum layers

	// Output parameters
	Scale           Scale  // pitch classes the phrase was drawn from
	ScaleSpec       string // e.g. "c:minor"
	OctaveShift     int    // negative shifts down, rendered as .sub(n)
	Gain            float64
	LPF             int // Hz, 0 disables
	UseScaleDegrees bool

	// Drum layers carry a sound instead of a phrase
	IsDrum    bool
	DrumSound string // e.g. "bd", "sd", "hh"
	Bank      string // e.g. "RolandTR808"

	// Diagnostic fitness of the winning genomes
	RhythmFitness float64
	MelodyFitness float64
}

// Composition is the ordered set of layers handed to serialization
type Composition struct {
	Layers    []Layer
	BPM       int
	ScaleSpec string // shared scale for harmonic consistency
}
