package genetic

import (
	"math/rand/v2"
)

// --- Core Type Constraints ---

// Solution represents any type that can be used as a solution encoding
// This is the most general constraint - any type can be a solution
type Solution any

// Numeric constrains types to numeric values for fitness scores
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Core Data Structures ---

// Candidate represents a potential solution with its evaluated quality score
// S is the solution type, F is the fitness/quality score type
type Candidate[S Solution, F Numeric] struct {
	// Data holds the encoded solution representation
	Data S
	// Score represents the quality/fitness of this solution (higher = better)
	Score F
}

// Pool represents a collection of solution candidates
// Members are kept sorted by descending score
type Pool[S Solution, F Numeric] struct {
	// Members contains all candidates in this pool, best first
	Members []Candidate[S, F]
	// Generation tracks the iteration number this pool represents
	Generation int
	// Stats holds statistical information about this pool
	Stats PoolStats
}

// PoolStats contains statistical information about a candidate pool
type PoolStats struct {
	Generation   int
	BestScore    float64
	WorstScore   float64
	AverageScore float64
	StdDev       float64
	Diversity    float64 // Measure of solution diversity (0-1)
}

// --- Function Types for Flexibility ---

// EvaluatorFunc calculates the quality score for a solution
// An error aborts the generation that requested the evaluation
type EvaluatorFunc[S Solution, F Numeric] func(solution S) (F, error)

// InitializerFunc creates a random solution for the initial population
type InitializerFunc[S Solution] func(rng *rand.Rand) S

// DiversityFunc measures spread of a set of solutions on a 0-1 scale
type DiversityFunc[S Solution] func(solutions []S) float64

// ObserverFunc receives the pool after initialization and after every step
type ObserverFunc[S Solution, F Numeric] func(pool *Pool[S, F])

// --- Core Operators as Interfaces ---

// Selector defines the selection operator for choosing parents
type Selector[S Solution, F Numeric] interface {
	// Select draws two distinct members of the pool
	Select(pool *Pool[S, F], rng *rand.Rand) (Candidate[S, F], Candidate[S, F], error)
}

// Combiner defines the recombination operator for creating new solutions
type Combiner[S Solution, F Numeric] interface {
	// Combine creates two offspring from two parents
	Combine(a, b Candidate[S, F], rng *rand.Rand) (S, S, error)
}

// Perturbator defines the mutation operator for introducing variation
type Perturbator[S Solution] interface {
	// Perturb returns a varied copy of solution, leaving the input untouched
	// The rate parameter is the per-locus probability of change (0-1)
	Perturb(solution S, rate float64, rng *rand.Rand) S
}
