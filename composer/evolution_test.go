package composer

import (
	"context"
	"testing"

	"github.com/IvanM-2157801/GeneticMusic/genetic"
	"github.com/IvanM-2157801/GeneticMusic/genome"
	"github.com/IvanM-2157801/GeneticMusic/metric"
	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/profile"
)

// TestRhythmEvolutionNonRegression verifies that evolving eight-beat
// rhythms under the pop profile never ends below where it started.
// Search is stochastic, so this asserts non-regression rather than an
// absolute score.
func TestRhythmEvolutionNonRegression(t *testing.T) {
	pop := profile.RhythmRegistry()["pop"]

	engine, err := genetic.NewEngine(
		pop.Evaluate,
		genome.RhythmInitializer(8, music.MaxSubdivision),
		&genetic.TournamentSelector[music.Rhythm, float64]{TournamentSize: 3},
		genome.RhythmCombiner(),
		&genome.RhythmPerturbator{MaxDigit: music.MaxSubdivision},
		genetic.EngineConfig{
			PoolSize:      20,
			EliteCount:    4,
			MutationRate:  0.25,
			MaxIterations: 25,
			Seed:          3,
		},
	)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	history := engine.GetHistory()
	best, err := engine.GetBest()
	if err != nil {
		t.Fatalf("GetBest failed: %v", err)
	}
	// Generation 0's best is the maximum of the initial population, so
	// beating it beats every initial individual
	if best.Score < history[0].BestScore {
		t.Errorf("Final best %f below initial population best %f", best.Score, history[0].BestScore)
	}
	if len(best.Data) != 8 {
		t.Errorf("Expected length-8 rhythm, got %d", len(best.Data))
	}
}

// melodyEngine runs one melody phase against a fixed rhythm
func melodyEngine(t *testing.T, rhythm music.Rhythm, profileName string, seed uint64) music.Phrase {
	t.Helper()
	p := profile.MelodyRegistry(music.MajorScale)[profileName]
	evaluate := func(phrase music.Phrase) float64 {
		return p.Evaluate(rhythm, phrase)
	}

	engine, err := genetic.NewEngine(
		evaluate,
		genome.PhraseInitializer(rhythm, music.MajorScale, 3, 5),
		&genetic.TournamentSelector[music.Phrase, float64]{TournamentSize: 3},
		&genome.PhraseCombiner{MixProbability: 0.5},
		&genome.PhrasePerturbator{Scale: music.MajorScale, OctaveLow: 3, OctaveHigh: 5},
		genetic.EngineConfig{
			PoolSize:      15,
			EliteCount:    3,
			MutationRate:  0.25,
			MaxIterations: 30,
			Seed:          seed,
		},
	)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	best, err := engine.GetBest()
	if err != nil {
		t.Fatalf("GetBest failed: %v", err)
	}
	return best.Data
}

// TestMelodyPhaseHoldsCountInvariant verifies the melody phase against
// rhythm "21212121" yields exactly its sixteen implied notes, all
// drawn from the scale and octave range
func TestMelodyPhaseHoldsCountInvariant(t *testing.T) {
	rhythm, err := music.ParseRhythm("21212121")
	if err != nil {
		t.Fatalf("ParseRhythm failed: %v", err)
	}

	best := melodyEngine(t, rhythm, "melodic", 5)
	if len(best) != rhythm.NoteCount() {
		t.Fatalf("Expected %d notes, got %d", rhythm.NoteCount(), len(best))
	}
	for i, note := range best {
		if note.IsRest() {
			continue
		}
		if !music.MajorScale.Contains(note.Pitch) {
			t.Errorf("Note %d pitch %v outside the scale", i, note.Pitch)
		}
		if degree := music.MajorScale.DegreeOf(note.Pitch); degree < 0 || degree > 6 {
			t.Errorf("Note %d degree %d outside 0..6", i, degree)
		}
	}
}

// TestMelodicLessSmoothThanStable verifies the two profiles pull in
// opposite directions: over several seeds, the melodic profile's best
// phrase is usually less smooth than the stable profile's. Statistical
// direction check, not per-seed.
func TestMelodicLessSmoothThanStable(t *testing.T) {
	rhythm, err := music.ParseRhythm("21212121")
	if err != nil {
		t.Fatalf("ParseRhythm failed: %v", err)
	}

	wins := 0
	seeds := []uint64{11, 23, 37, 53, 71}
	for _, seed := range seeds {
		melodic := metric.IntervalSmoothness(melodyEngine(t, rhythm, "melodic", seed))
		stable := metric.IntervalSmoothness(melodyEngine(t, rhythm, "stable", seed))
		if melodic < stable {
			wins++
		}
	}
	if wins <= len(seeds)/2 {
		t.Errorf("Expected melodic less smooth than stable in a majority of runs, got %d/%d", wins, len(seeds))
	}
}
