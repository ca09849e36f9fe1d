package genetic

// Package genetic provides a generic-first genetic algorithm framework.
// It has zero knowledge of the musical types layered on top: genomes
// plug in through the operator interfaces, so the same engine evolves
// rhythm strings and melodic phrases without modification.

import (
	"math/rand/v2"
	"sort"
)

// --- Concrete Operator Implementations ---

// TournamentSelector implements tournament selection: sample a small
// group uniformly and take its fittest member. Both parents of a pair
// are drawn independently, so a candidate can face itself.
type TournamentSelector[S Solution, F Numeric] struct {
	// TournamentSize is the number of candidates competing per draw
	TournamentSize int
}

// Select implements the Selector interface using tournament selection
func (ts *TournamentSelector[S, F]) Select(pool *Pool[S, F], size int, rng *rand.Rand) []Candidate[S, F] {
	selected := make([]Candidate[S, F], 0, size)
	poolSize := len(pool.Members)

	tournSize := ts.TournamentSize
	if tournSize < 1 {
		tournSize = 2
	}

	for len(selected) < size {
		// A tournament at least as large as the pool leaves no
		// randomness to resolve: the overall best always wins
		if tournSize >= poolSize {
			selected = append(selected, bestOf(pool.Members))
			continue
		}

		winner := pool.Members[rng.IntN(poolSize)]
		for i := 1; i < tournSize; i++ {
			candidate := pool.Members[rng.IntN(poolSize)]
			if candidate.Score > winner.Score {
				winner = candidate
			}
		}
		selected = append(selected, winner)
	}

	return selected
}

func bestOf[S Solution, F Numeric](members []Candidate[S, F]) Candidate[S, F] {
	best := members[0]
	for _, c := range members[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}

// UniformCombiner performs uniform crossover between slice genomes.
// Each position has equal probability of coming from either parent,
// which trivially preserves genome length.
type UniformCombiner[S ~[]T, T any, F Numeric] struct {
	// MixProbability is the chance of taking from parent 1 vs parent 2
	MixProbability float64
}

// Combine creates two offspring using uniform crossover
func (uc *UniformCombiner[S, T, F]) Combine(parents []Candidate[S, F], rng *rand.Rand) []S {
	if len(parents) < 2 {
		if len(parents) == 1 {
			return []S{cloneSlice[S](parents[0].Data)}
		}
		return []S{}
	}

	parent1, parent2 := parents[0].Data, parents[1].Data
	length := min(len(parent1), len(parent2))

	offspring1 := make(S, length)
	offspring2 := make(S, length)

	for i := 0; i < length; i++ {
		if rng.Float64() < uc.MixProbability {
			offspring1[i] = parent1[i]
			offspring2[i] = parent2[i]
		} else {
			offspring1[i] = parent2[i]
			offspring2[i] = parent1[i]
		}
	}

	return []S{offspring1, offspring2}
}

// NPointCombiner performs N-point crossover between slice genomes.
// The genome is split at N random points and segments alternate
// between parents.
type NPointCombiner[S ~[]T, T any, F Numeric] struct {
	// Points is the number of crossover points
	Points int
}

// Combine creates two offspring using N-point crossover
func (nc *NPointCombiner[S, T, F]) Combine(parents []Candidate[S, F], rng *rand.Rand) []S {
	if len(parents) < 2 {
		if len(parents) == 1 {
			return []S{cloneSlice[S](parents[0].Data)}
		}
		return []S{}
	}

	parent1, parent2 := parents[0].Data, parents[1].Data
	length := min(len(parent1), len(parent2))
	if length < 2 {
		return []S{cloneSlice[S](parent1), cloneSlice[S](parent2)}
	}

	points := make([]int, 0, nc.Points+2)
	points = append(points, 0)
	for i := 0; i < nc.Points && i < length-1; i++ {
		points = append(points, rng.IntN(length-1)+1)
	}
	points = append(points, length)
	sort.Ints(points)

	offspring1 := make(S, length)
	offspring2 := make(S, length)

	useParent1 := true
	for i := 0; i < len(points)-1; i++ {
		for j := points[i]; j < points[i+1]; j++ {
			if useParent1 {
				offspring1[j] = parent1[j]
				offspring2[j] = parent2[j]
			} else {
				offspring1[j] = parent2[j]
				offspring2[j] = parent1[j]
			}
		}
		useParent1 = !useParent1
	}

	return []S{offspring1, offspring2}
}

func cloneSlice[S ~[]T, T any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}
