// Package composer drives the two-phase evolution of whole
// compositions. Each layer first evolves a rhythm alone, then freezes
// the winner and evolves a melodic phrase against it; drum layers stop
// after the rhythm phase. Layers are independent searches and run
// concurrently.
package composer

import (
	"context"
	"fmt"
	"sync"

	"github.com/IvanM-2157801/GeneticMusic/genetic"
	"github.com/IvanM-2157801/GeneticMusic/genome"
	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
	"github.com/IvanM-2157801/GeneticMusic/profile"
	"github.com/IvanM-2157801/GeneticMusic/trace"
)

// LayerConfig describes one layer to evolve
type LayerConfig struct {
	Name       string
	Instrument string

	// RhythmProfile names an entry in the rhythm registry.
	// MelodyProfile names one in the melody registry; empty for drums.
	RhythmProfile string
	MelodyProfile string

	Beats          int // rhythm genome length, 0 uses the default bar
	MaxSubdivision int // 0 uses music.MaxSubdivision
	OctaveLow      int
	OctaveHigh     int

	// Output parameters passed through to the layer
	OctaveShift     int
	Gain            float64
	LPF             int
	UseScaleDegrees bool

	IsDrum    bool
	DrumSound string
	Bank      string

	// SegmentCrossover swaps intact rhythm halves instead of mixing
	// digit by digit, which keeps backbeat placements coherent
	SegmentCrossover bool
}

// Config describes one full composition run
type Config struct {
	Layers    []LayerConfig
	BPM       int
	Scale     music.Scale
	ScaleSpec string

	// Seed makes the whole run reproducible; 0 randomizes every layer
	Seed uint64

	// Parallelism caps concurrent layer evolutions; 0 uses the default
	Parallelism int

	// Optional early-stop fitness targets, 0 disables
	RhythmTarget float64
	MelodyTarget float64

	// Generation counts per phase, 0 uses the defaults
	RhythmGenerations int
	MelodyGenerations int
}

// LayerTrace carries the per-generation fitness curves of one layer
type LayerTrace struct {
	Layer  string
	Rhythm trace.Series
	Melody trace.Series
}

// Result is a finished composition plus its evolution traces
type Result struct {
	Composition music.Composition
	Traces      []LayerTrace
}

// Composer evolves compositions from a validated configuration
type Composer struct {
	cfg            Config
	rhythmRegistry map[string]profile.RhythmProfile
	melodyRegistry map[string]profile.MelodyProfile
}

// New validates the configuration and resolves all profile names.
// Misconfiguration fails here, before any evolution starts.
func New(cfg Config) (*Composer, error) {
	if len(cfg.Layers) == 0 {
		return nil, fmt.Errorf("composition needs at least one layer")
	}
	if cfg.BPM <= 0 {
		cfg.BPM = parameter.DefaultBPM
	}
	if len(cfg.Scale) == 0 {
		cfg.Scale = music.MinorScale
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = parameter.ComposerParallelism
	}
	if cfg.RhythmGenerations <= 0 {
		cfg.RhythmGenerations = parameter.RhythmGenerations
	}
	if cfg.MelodyGenerations <= 0 {
		cfg.MelodyGenerations = parameter.MelodyGenerations
	}

	rhythmRegistry := profile.RhythmRegistry()
	melodyRegistry := profile.MelodyRegistry(cfg.Scale)

	for i := range cfg.Layers {
		layer := &cfg.Layers[i]
		if layer.Name == "" {
			return nil, fmt.Errorf("layer %d has no name", i)
		}
		if layer.Beats <= 0 {
			layer.Beats = parameter.DefaultBeatsPerBar * parameter.DefaultBars
		}
		if layer.MaxSubdivision <= 0 {
			layer.MaxSubdivision = music.MaxSubdivision
		}
		if layer.MaxSubdivision > music.MaxSubdivision {
			return nil, fmt.Errorf("layer %q: max subdivision %d exceeds %d",
				layer.Name, layer.MaxSubdivision, music.MaxSubdivision)
		}
		if layer.OctaveLow == 0 && layer.OctaveHigh == 0 {
			layer.OctaveLow = parameter.DefaultOctaveLow
			layer.OctaveHigh = parameter.DefaultOctaveHigh
		}
		if layer.OctaveLow < parameter.MinOctave || layer.OctaveHigh > parameter.MaxOctave ||
			layer.OctaveLow > layer.OctaveHigh {
			return nil, fmt.Errorf("layer %q: octave range %d..%d invalid",
				layer.Name, layer.OctaveLow, layer.OctaveHigh)
		}
		if layer.Gain <= 0 {
			layer.Gain = parameter.DefaultGain
		}

		if _, ok := rhythmRegistry[layer.RhythmProfile]; !ok {
			return nil, fmt.Errorf("layer %q: unknown rhythm profile %q",
				layer.Name, layer.RhythmProfile)
		}
		if layer.IsDrum {
			if layer.DrumSound == "" {
				return nil, fmt.Errorf("drum layer %q has no drum sound", layer.Name)
			}
		} else {
			if _, ok := melodyRegistry[layer.MelodyProfile]; !ok {
				return nil, fmt.Errorf("layer %q: unknown melody profile %q",
					layer.Name, layer.MelodyProfile)
			}
			if layer.Instrument == "" {
				return nil, fmt.Errorf("melodic layer %q has no instrument", layer.Name)
			}
		}
	}

	return &Composer{
		cfg:            cfg,
		rhythmRegistry: rhythmRegistry,
		melodyRegistry: melodyRegistry,
	}, nil
}

// Compose evolves every configured layer and assembles the result.
// Layers run concurrently up to the configured parallelism; the first
// layer error aborts the run.
func (c *Composer) Compose(ctx context.Context) (*Result, error) {
	layers := make([]music.Layer, len(c.cfg.Layers))
	traces := make([]LayerTrace, len(c.cfg.Layers))
	errs := make([]error, len(c.cfg.Layers))

	sem := make(chan struct{}, c.cfg.Parallelism)
	var wg sync.WaitGroup
	for i := range c.cfg.Layers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			layers[idx], traces[idx], errs[idx] = c.evolveLayer(ctx, c.cfg.Layers[idx], idx)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", c.cfg.Layers[i].Name, err)
		}
	}

	return &Result{
		Composition: music.Composition{
			Layers:    layers,
			BPM:       c.cfg.BPM,
			ScaleSpec: c.cfg.ScaleSpec,
		},
		Traces: traces,
	}, nil
}

// layerSeed derives a distinct deterministic seed per layer and phase
// from the run seed. A zero run seed stays zero, which the engine
// treats as "randomize".
func (c *Composer) layerSeed(layer, phase int) uint64 {
	if c.cfg.Seed == 0 {
		return 0
	}
	return c.cfg.Seed + uint64(layer)*1000003 + uint64(phase)
}

func (c *Composer) evolveLayer(ctx context.Context, lc LayerConfig, idx int) (music.Layer, LayerTrace, error) {
	rhythm, rhythmFitness, rhythmSeries, err := c.evolveRhythm(ctx, lc, idx)
	if err != nil {
		return music.Layer{}, LayerTrace{}, err
	}

	layer := music.Layer{
		Name:            lc.Name,
		Instrument:      lc.Instrument,
		Rhythm:          rhythm,
		Scale:           c.cfg.Scale,
		ScaleSpec:       c.cfg.ScaleSpec,
		OctaveShift:     lc.OctaveShift,
		Gain:            lc.Gain,
		LPF:             lc.LPF,
		UseScaleDegrees: lc.UseScaleDegrees,
		IsDrum:          lc.IsDrum,
		DrumSound:       lc.DrumSound,
		Bank:            lc.Bank,
		RhythmFitness:   rhythmFitness,
	}
	layerTrace := LayerTrace{Layer: lc.Name, Rhythm: rhythmSeries}

	if lc.IsDrum {
		return layer, layerTrace, nil
	}

	melodyProfile := c.melodyRegistry[lc.MelodyProfile]
	if rhythm.NoteCount() == 0 {
		// An all-rest rhythm leaves nothing to evolve; an empty phrase
		// is the correct melody for it
		layer.Phrase = music.Phrase{}
		layer.MelodyFitness = melodyProfile.Evaluate(rhythm, nil)
		layerTrace.Melody = trace.Series{Label: lc.Name + "/melody"}
		return layer, layerTrace, nil
	}

	phrase, melodyFitness, melodySeries, err := c.evolveMelody(ctx, lc, idx, rhythm, melodyProfile)
	if err != nil {
		return music.Layer{}, LayerTrace{}, err
	}
	layer.Phrase = phrase
	layer.MelodyFitness = melodyFitness
	layerTrace.Melody = melodySeries
	return layer, layerTrace, nil
}

func (c *Composer) evolveRhythm(ctx context.Context, lc LayerConfig, idx int) (music.Rhythm, float64, trace.Series, error) {
	rhythmProfile := c.rhythmRegistry[lc.RhythmProfile]

	engineCfg := genetic.DefaultConfig()
	engineCfg.MaxIterations = c.cfg.RhythmGenerations
	engineCfg.Seed = c.layerSeed(idx, 0)

	var combiner genetic.Combiner[music.Rhythm, float64]
	if lc.SegmentCrossover {
		combiner = genome.RhythmSegmentCombiner()
	} else {
		combiner = genome.RhythmCombiner()
	}

	engine, err := genetic.NewEngine(
		rhythmProfile.Evaluate,
		genome.RhythmInitializer(lc.Beats, lc.MaxSubdivision),
		&genetic.TournamentSelector[music.Rhythm, float64]{TournamentSize: parameter.GATournamentSize},
		combiner,
		&genome.RhythmPerturbator{MaxDigit: lc.MaxSubdivision},
		engineCfg,
	)
	if err != nil {
		return nil, 0, trace.Series{}, fmt.Errorf("rhythm engine: %w", err)
	}
	if c.cfg.RhythmTarget > 0 {
		engine.SetTerminator(genetic.TargetScore[music.Rhythm, float64](c.cfg.RhythmTarget))
	}

	if _, err := engine.Run(ctx); err != nil {
		return nil, 0, trace.Series{}, err
	}
	best, err := engine.GetBest()
	if err != nil {
		return nil, 0, trace.Series{}, err
	}

	series := trace.FromHistory(lc.Name+"/rhythm", engine.GetHistory())
	return best.Data.Clone(), best.Score, series, nil
}

func (c *Composer) evolveMelody(ctx context.Context, lc LayerConfig, idx int, rhythm music.Rhythm, melodyProfile profile.MelodyProfile) (music.Phrase, float64, trace.Series, error) {
	engineCfg := genetic.DefaultConfig()
	engineCfg.MaxIterations = c.cfg.MelodyGenerations
	engineCfg.Seed = c.layerSeed(idx, 1)

	evaluate := func(p music.Phrase) float64 {
		return melodyProfile.Evaluate(rhythm, p)
	}

	engine, err := genetic.NewEngine(
		evaluate,
		genome.PhraseInitializer(rhythm, c.cfg.Scale, lc.OctaveLow, lc.OctaveHigh),
		&genetic.TournamentSelector[music.Phrase, float64]{TournamentSize: parameter.GATournamentSize},
		&genome.PhraseCombiner{MixProbability: parameter.GACrossoverMixProbability},
		&genome.PhrasePerturbator{Scale: c.cfg.Scale, OctaveLow: lc.OctaveLow, OctaveHigh: lc.OctaveHigh},
		engineCfg,
	)
	if err != nil {
		return nil, 0, trace.Series{}, fmt.Errorf("melody engine: %w", err)
	}
	if c.cfg.MelodyTarget > 0 {
		engine.SetTerminator(genetic.TargetScore[music.Phrase, float64](c.cfg.MelodyTarget))
	}

	if _, err := engine.Run(ctx); err != nil {
		return nil, 0, trace.Series{}, err
	}
	best, err := engine.GetBest()
	if err != nil {
		return nil, 0, trace.Series{}, err
	}

	series := trace.FromHistory(lc.Name+"/melody", engine.GetHistory())
	return best.Data.Clone(), best.Score, series, nil
}
