// Package genome provides the musical genome operators plugged into
// the genetic engine: random generation, crossover and mutation for
// rhythm strings and for melodic phrases under a fixed rhythm.
package genome

import (
	"math/rand/v2"

	"github.com/IvanM-2157801/GeneticMusic/genetic"
	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// RhythmInitializer returns an initializer producing rhythms of the
// given beat count with digits drawn uniformly from 0..maxDigit
func RhythmInitializer(beats, maxDigit int) genetic.InitializerFunc[music.Rhythm] {
	return func(rng *rand.Rand) music.Rhythm {
		r := make(music.Rhythm, beats)
		for i := range r {
			r[i] = rng.IntN(maxDigit + 1)
		}
		return r
	}
}

// RhythmCombiner builds a uniform crossover over rhythm digits.
// Per-position choice between parents preserves length by construction.
func RhythmCombiner() *genetic.UniformCombiner[music.Rhythm, int, float64] {
	return &genetic.UniformCombiner[music.Rhythm, int, float64]{
		MixProbability: parameter.GACrossoverMixProbability,
	}
}

// RhythmSegmentCombiner builds a single-point crossover, used for drum
// rhythms where intact half-bar segments keep backbeats coherent
func RhythmSegmentCombiner() *genetic.NPointCombiner[music.Rhythm, int, float64] {
	return &genetic.NPointCombiner[music.Rhythm, int, float64]{Points: 1}
}

// RhythmPerturbator resamples each digit with per-digit probability
// rate, drawing uniformly from the 0..MaxDigit alphabet
type RhythmPerturbator struct {
	MaxDigit int
}

func (rp *RhythmPerturbator) Perturb(rhythm *music.Rhythm, rate float64, rng *rand.Rand) {
	if rhythm == nil {
		return
	}
	for i := range *rhythm {
		if rng.Float64() < rate {
			(*rhythm)[i] = rng.IntN(rp.MaxDigit + 1)
		}
	}
}
