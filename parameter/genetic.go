package parameter

// Genetic Algorithm - Engine Defaults
const (
	// GAPopulationSize is the number of individuals in each population
	GAPopulationSize = 20

	// GAEliteCount is preserved best performers per generation
	GAEliteCount = 4

	// GAMutationRate is per-gene probability of resampling (0.0-1.0)
	GAMutationRate = 0.25

	// GAGenerations caps synchronous evolution runs
	GAGenerations = 50

	// GATournamentSize for selection pressure
	GATournamentSize = 3

	// GACrossoverMixProbability for uniform crossover
	GACrossoverMixProbability = 0.5
)

// Genetic Algorithm - Two-Phase Composer Defaults
const (
	// RhythmGenerations caps the rhythm evolution phase
	RhythmGenerations = 20

	// MelodyGenerations caps the melody evolution phase
	MelodyGenerations = 30

	// ComposerParallelism bounds concurrent layer evolutions
	ComposerParallelism = 4
)
