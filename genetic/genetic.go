package genetic

// Package genetic provides a generic genetic algorithm engine
// 1. Has zero knowledge of the encoding or objective it optimizes
// 2. Receives randomness, operators and construction capability explicitly
// 3. Never installs a partially built generation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// --- Concrete Operator Implementations ---

// RouletteSelector implements fitness-proportionate selection
// Candidates are selected with probability score_i / sum(scores), without replacement
type RouletteSelector[S Solution, F Numeric] struct{}

// Select draws two distinct candidates using the roulette wheel
func (rs *RouletteSelector[S, F]) Select(pool *Pool[S, F], rng *rand.Rand) (Candidate[S, F], Candidate[S, F], error) {
	var zero Candidate[S, F]
	if pool == nil || len(pool.Members) < 2 {
		size := 0
		if pool != nil {
			size = len(pool.Members)
		}
		return zero, zero, fmt.Errorf("%w: pool of %d cannot yield two parents", ErrSelection, size)
	}

	weights, err := rouletteWeights(pool.Members)
	if err != nil {
		return zero, zero, err
	}

	total := floats.Sum(weights)
	if math.IsInf(total, 0) || !(total > 0) {
		return zero, zero, fmt.Errorf("%w: score sum %v is not strictly positive and finite", ErrSelection, total)
	}

	first := spin(weights, rng)

	// Without replacement: the first pick leaves the wheel before the second spin
	weights[first] = 0
	if !(floats.Sum(weights) > 0) {
		return zero, zero, fmt.Errorf("%w: fewer than two candidates with non-zero score", ErrSelection)
	}
	second := spin(weights, rng)

	return pool.Members[first], pool.Members[second], nil
}

// rouletteWeights converts scores to raw wheel weights
func rouletteWeights[S Solution, F Numeric](members []Candidate[S, F]) ([]float64, error) {
	weights := make([]float64, len(members))
	for i, c := range members {
		w := float64(c.Score)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: candidate %d has non-finite score %v", ErrSelection, i, w)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: candidate %d has negative score %v", ErrSelection, i, w)
		}
		weights[i] = w
	}
	return weights, nil
}

// spin picks an index with probability weights[i] / sum(weights)
// Zero-weight slots are never returned; sum(weights) must be positive
func spin(weights []float64, rng *rand.Rand) int {
	cumulative := floats.CumSum(make([]float64, len(weights)), weights)
	total := cumulative[len(cumulative)-1]
	target := rng.Float64() * total

	idx := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > target
	})
	if idx < len(weights) {
		return idx
	}

	// Rounding put the target on the rim; fall back to the last live slot
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}
