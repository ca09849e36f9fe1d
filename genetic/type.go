package genetic

import (
	"math/rand/v2"
)

// --- Core Type Constraints ---

// Solution represents any type that can be used as a genome encoding
type Solution any

// Numeric constrains types usable as fitness scores
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Core Data Structures ---

// Candidate is a genome paired with its evaluated fitness.
// S is the genome type, F is the fitness score type.
type Candidate[S Solution, F Numeric] struct {
	// Data holds the encoded genome
	Data S
	// Score is the fitness of this genome (higher = better)
	Score F
}

// Pool is the fixed-size population evolved through one run
type Pool[S Solution, F Numeric] struct {
	// Members contains all candidates, sorted descending by score
	// after every generation step
	Members []Candidate[S, F]
	// Generation tracks the iteration number this pool represents
	Generation int
	// Stats holds statistical information about this pool
	Stats PoolStats[F]
}

// PoolStats summarizes one generation of a pool
type PoolStats[F Numeric] struct {
	BestScore    F
	WorstScore   F
	AverageScore F
}

// --- Function Types ---

// EvaluatorFunc computes the fitness score for a genome.
// Must be pure: same genome, same score.
type EvaluatorFunc[S Solution, F Numeric] func(genome S) F

// InitializerFunc creates one random genome for the initial population
type InitializerFunc[S Solution] func(rng *rand.Rand) S

// TerminationFunc reports whether evolution should stop early.
// Called before each generation step.
type TerminationFunc[S Solution, F Numeric] func(pool *Pool[S, F], iteration int) bool

// --- Core Operators as Interfaces ---

// Selector chooses candidates from the pool for reproduction
type Selector[S Solution, F Numeric] interface {
	// Select returns size candidates; repeats are permitted
	Select(pool *Pool[S, F], size int, rng *rand.Rand) []Candidate[S, F]
}

// Combiner produces offspring genomes from parent candidates
type Combiner[S Solution, F Numeric] interface {
	// Combine creates one or more new genomes from the parents
	Combine(parents []Candidate[S, F], rng *rand.Rand) []S
}

// Perturbator mutates a genome in place to introduce variation
type Perturbator[S Solution] interface {
	// Perturb resamples genes with per-gene probability rate (0-1)
	Perturb(genome *S, rate float64, rng *rand.Rand)
}
