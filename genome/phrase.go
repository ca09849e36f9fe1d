package genome

import (
	"fmt"
	"math/rand/v2"

	"github.com/IvanM-2157801/GeneticMusic/genetic"
	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// Phrase operators run inside one melody phase, where the rhythm is
// fixed. They touch pitch content only: note count and durations come
// from the rhythm and never change. A phrase whose length disagrees
// with its partner's is a corrupted genome; breeding it would poison
// every downstream fitness value, so that case is a fatal assertion,
// not an error to recover from.

// PhraseInitializer returns an initializer producing one random note
// per slot the rhythm implies, drawn from scale and the octave range.
// A slot may also come up as a rest: the rhythm decides how many slots
// exist per beat, the phrase decides which of them actually sound.
func PhraseInitializer(rhythm music.Rhythm, scale music.Scale, octaveLow, octaveHigh int) genetic.InitializerFunc[music.Phrase] {
	durations := rhythm.Durations()
	return func(rng *rand.Rand) music.Phrase {
		p := make(music.Phrase, len(durations))
		for i := range p {
			if rng.Float64() < parameter.RestProbability {
				p[i] = music.Note{Pitch: music.Rest, Duration: durations[i]}
				continue
			}
			p[i] = music.Note{
				Pitch:    scale[rng.IntN(len(scale))],
				Octave:   octaveLow + rng.IntN(octaveHigh-octaveLow+1),
				Duration: durations[i],
				Velocity: 0.5 + rng.Float64()*0.5,
			}
		}
		return p
	}
}

// PhraseCombiner exchanges pitches position by position between two
// phrases bred against the same rhythm
type PhraseCombiner struct {
	MixProbability float64
}

func (pc *PhraseCombiner) Combine(parents []genetic.Candidate[music.Phrase, float64], rng *rand.Rand) []music.Phrase {
	if len(parents) < 2 {
		if len(parents) == 1 {
			return []music.Phrase{parents[0].Data.Clone()}
		}
		return nil
	}

	parent1, parent2 := parents[0].Data, parents[1].Data
	if len(parent1) != len(parent2) {
		panic(fmt.Sprintf("phrase crossover: parents have %d and %d notes; both must share one rhythm", len(parent1), len(parent2)))
	}

	offspring1 := make(music.Phrase, len(parent1))
	offspring2 := make(music.Phrase, len(parent1))
	for i := range parent1 {
		if rng.Float64() < pc.MixProbability {
			offspring1[i] = parent1[i]
			offspring2[i] = parent2[i]
		} else {
			offspring1[i] = parent2[i]
			offspring2[i] = parent1[i]
		}
	}

	return []music.Phrase{offspring1, offspring2}
}

// PhrasePerturbator resamples a sounding note's pitch with per-note
// probability rate. Rest slots are left alone: which slots sound is
// settled at initialization, mutation only moves pitches within the
// scale. Durations belong to the rhythm and are left alone too.
type PhrasePerturbator struct {
	Scale      music.Scale
	OctaveLow  int
	OctaveHigh int
}

func (pp *PhrasePerturbator) Perturb(phrase *music.Phrase, rate float64, rng *rand.Rand) {
	if phrase == nil {
		return
	}
	for i := range *phrase {
		if (*phrase)[i].IsRest() {
			continue
		}
		if rng.Float64() >= rate {
			continue
		}
		(*phrase)[i].Pitch = pp.Scale[rng.IntN(len(pp.Scale))]
		(*phrase)[i].Octave = pp.OctaveLow + rng.IntN(pp.OctaveHigh-pp.OctaveLow+1)
	}
}
