package genetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// --- Algorithm Engine ---

// Engine is the main genetic algorithm execution engine.
// It coordinates all operators and manages the evolution process.
// Runs are synchronous and single-threaded; callers wanting
// parallelism run independent engines on independent populations.
type Engine[S Solution, F Numeric] struct {
	// Core operators
	evaluator   EvaluatorFunc[S, F]
	initializer InitializerFunc[S]
	selector    Selector[S, F]
	combiner    Combiner[S, F]
	perturbator Perturbator[S]
	terminator  TerminationFunc[S, F]

	// Configuration
	config EngineConfig

	// State
	rng         *rand.Rand
	currentPool *Pool[S, F]
	best        Candidate[S, F]
	hasBest     bool
	converged   bool
	history     []PoolStats[F]
}

// EngineConfig holds configuration parameters for the algorithm
type EngineConfig struct {
	// PoolSize is the number of candidates maintained in each generation
	PoolSize int
	// EliteCount is the number of best genomes preserved unchanged
	EliteCount int
	// MutationRate is the per-gene probability of resampling (0-1)
	MutationRate float64
	// MaxIterations is the number of generations to run
	MaxIterations int
	// Seed for random number generation (0 for random seed)
	Seed uint64
}

// DefaultConfig returns a reasonable default configuration
func DefaultConfig() EngineConfig {
	return EngineConfig{
		PoolSize:      parameter.GAPopulationSize,
		EliteCount:    parameter.GAEliteCount,
		MutationRate:  parameter.GAMutationRate,
		MaxIterations: parameter.GAGenerations,
		Seed:          0,
	}
}

// Validate rejects configurations the loop cannot run with.
// Invalid configuration is a caller bug and fails here, never midway
// through a run.
func (c EngineConfig) Validate() error {
	if c.PoolSize <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", c.PoolSize)
	}
	if c.EliteCount < 0 || c.EliteCount > c.PoolSize {
		return fmt.Errorf("elite count %d outside 0..%d", c.EliteCount, c.PoolSize)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("mutation rate %v outside [0,1]", c.MutationRate)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

// NewEngine creates a genetic algorithm engine with the given operators
func NewEngine[S Solution, F Numeric](
	evaluator EvaluatorFunc[S, F],
	initializer InitializerFunc[S],
	selector Selector[S, F],
	combiner Combiner[S, F],
	perturbator Perturbator[S],
	config EngineConfig,
) (*Engine[S, F], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch {
	case evaluator == nil:
		return nil, errors.New("evaluator is required")
	case initializer == nil:
		return nil, errors.New("initializer is required")
	case selector == nil:
		return nil, errors.New("selector is required")
	case combiner == nil:
		return nil, errors.New("combiner is required")
	case perturbator == nil:
		return nil, errors.New("perturbator is required")
	}

	var rng *rand.Rand
	if config.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}

	return &Engine[S, F]{
		evaluator:   evaluator,
		initializer: initializer,
		selector:    selector,
		combiner:    combiner,
		perturbator: perturbator,
		config:      config,
		rng:         rng,
		history:     make([]PoolStats[F], 0, config.MaxIterations),
	}, nil
}

// SetTerminator sets an early-stop condition such as TargetScore
func (e *Engine[S, F]) SetTerminator(terminator TerminationFunc[S, F]) {
	e.terminator = terminator
}

// TargetScore builds a terminator that stops once the best candidate
// reaches the target fitness
func TargetScore[S Solution, F Numeric](target F) TerminationFunc[S, F] {
	return func(pool *Pool[S, F], _ int) bool {
		return pool != nil && len(pool.Members) > 0 && pool.Stats.BestScore >= target
	}
}

// Run executes the genetic algorithm until MaxIterations or the
// terminator fires, returning the final pool
func (e *Engine[S, F]) Run(ctx context.Context) (*Pool[S, F], error) {
	e.initializePool()

	for iteration := 0; iteration < e.config.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return e.currentPool, ctx.Err()
		default:
		}

		if e.terminator != nil && e.terminator(e.currentPool, iteration) {
			e.converged = true
			break
		}

		e.evolveGeneration()
		e.history = append(e.history, e.currentPool.Stats)
	}

	return e.currentPool, nil
}

// initializePool creates and evaluates the initial random population
func (e *Engine[S, F]) initializePool() {
	candidates := make([]Candidate[S, F], e.config.PoolSize)
	for i := range candidates {
		genome := e.initializer(e.rng)
		candidates[i] = Candidate[S, F]{
			Data:  genome,
			Score: e.evaluator(genome),
		}
	}

	sortByScore(candidates)
	e.currentPool = &Pool[S, F]{
		Members:    candidates,
		Generation: 0,
		Stats:      calculateStats(candidates),
	}
	e.trackBest()
	e.history = append(e.history, e.currentPool.Stats)
}

// evolveGeneration replaces the pool with elites plus bred offspring
func (e *Engine[S, F]) evolveGeneration() {
	nextGen := make([]Candidate[S, F], 0, e.config.PoolSize)

	// Elites keep their cached score; fitness is pure, re-evaluating
	// an unchanged genome buys nothing
	nextGen = append(nextGen, e.currentPool.Members[:e.config.EliteCount]...)

	for len(nextGen) < e.config.PoolSize {
		parents := e.selector.Select(e.currentPool, 2, e.rng)
		offspring := e.combiner.Combine(parents, e.rng)

		for i := range offspring {
			e.perturbator.Perturb(&offspring[i], e.config.MutationRate, e.rng)
			nextGen = append(nextGen, Candidate[S, F]{
				Data:  offspring[i],
				Score: e.evaluator(offspring[i]),
			})
			if len(nextGen) >= e.config.PoolSize {
				break
			}
		}
	}

	sortByScore(nextGen)
	e.currentPool = &Pool[S, F]{
		Members:    nextGen,
		Generation: e.currentPool.Generation + 1,
		Stats:      calculateStats(nextGen),
	}
	e.trackBest()
}

func (e *Engine[S, F]) trackBest() {
	top := e.currentPool.Members[0]
	if !e.hasBest || top.Score > e.best.Score {
		e.best = top
		e.hasBest = true
	}
}

// sortByScore orders candidates descending by fitness
func sortByScore[S Solution, F Numeric](candidates []Candidate[S, F]) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// calculateStats computes statistical measures for a sorted pool
func calculateStats[S Solution, F Numeric](candidates []Candidate[S, F]) PoolStats[F] {
	if len(candidates) == 0 {
		return PoolStats[F]{}
	}

	stats := PoolStats[F]{
		BestScore:  candidates[0].Score,
		WorstScore: candidates[len(candidates)-1].Score,
	}
	total := F(0)
	for _, c := range candidates {
		total += c.Score
	}
	stats.AverageScore = total / F(len(candidates))
	return stats
}

// GetHistory returns per-generation statistics, generation 0 first
func (e *Engine[S, F]) GetHistory() []PoolStats[F] {
	return e.history
}

// Converged reports whether the terminator stopped the run early
func (e *Engine[S, F]) Converged() bool {
	return e.converged
}

// GetBest returns the best candidate seen across all generations
func (e *Engine[S, F]) GetBest() (Candidate[S, F], error) {
	if !e.hasBest {
		return Candidate[S, F]{}, errors.New("no candidates available")
	}
	return e.best, nil
}
