package genetic

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/evolve2d/parameter"
)

// ErrNoPool is returned by accessors and Step before Initialize succeeds
var ErrNoPool = errors.New("engine has no pool")

// --- Algorithm Engine ---

// Engine is the main genetic algorithm execution engine
// It coordinates all operators and manages the evolution process
type Engine[S Solution, F Numeric] struct {
	// Core operators
	evaluator   EvaluatorFunc[S, F]
	initializer InitializerFunc[S]
	selector    Selector[S, F]
	combiner    Combiner[S, F]
	perturbator Perturbator[S]
	diversity   DiversityFunc[S]

	// Configuration
	config Config

	// State
	rng         *rand.Rand
	logger      *zap.Logger
	stage       Stage
	currentPool *Pool[S, F]
	history     []PoolStats
}

// Config holds configuration parameters for the algorithm
type Config struct {
	// PoolSize is the number of candidates maintained in each generation
	PoolSize int
	// EliteCount is the number of best solutions preserved unchanged
	EliteCount int
	// MutationRate is the per-locus perturbation probability (0-1)
	MutationRate float64
	// GenerationLimit is the number of generational steps Run performs
	GenerationLimit int
	// Parallelism controls the number of concurrent evaluations
	Parallelism int
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		PoolSize:        parameter.GAPopulationSize,
		EliteCount:      parameter.GAEliteCount,
		MutationRate:    parameter.GAMutationRate,
		GenerationLimit: parameter.GAGenerationLimit,
		Parallelism:     parameter.GAParallelism,
	}
}

// Validate reports every out-of-range field
func (c Config) Validate() error {
	var errs []error
	if c.PoolSize < 2 {
		errs = append(errs, fmt.Errorf("pool size %d: need at least 2", c.PoolSize))
	}
	if c.EliteCount < 0 || c.EliteCount > c.PoolSize {
		errs = append(errs, fmt.Errorf("elite count %d: must be within [0, %d]", c.EliteCount, c.PoolSize))
	}
	if math.IsNaN(c.MutationRate) || c.MutationRate < 0 || c.MutationRate > 1 {
		errs = append(errs, fmt.Errorf("mutation rate %v: must be within [0, 1]", c.MutationRate))
	}
	if c.GenerationLimit < 0 {
		errs = append(errs, fmt.Errorf("generation limit %d: must not be negative", c.GenerationLimit))
	}
	if c.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("parallelism %d: need at least 1", c.Parallelism))
	}
	return errors.Join(errs...)
}

// NewRand returns a PCG-backed source; seed 0 draws a random seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEngine creates a new genetic algorithm engine with the specified operators
// All randomness is drawn from rng
func NewEngine[S Solution, F Numeric](
	evaluator EvaluatorFunc[S, F],
	initializer InitializerFunc[S],
	selector Selector[S, F],
	combiner Combiner[S, F],
	perturbator Perturbator[S],
	config Config,
	rng *rand.Rand,
) (*Engine[S, F], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if evaluator == nil || initializer == nil || selector == nil || combiner == nil || perturbator == nil {
		return nil, errors.New("engine requires evaluator, initializer, selector, combiner and perturbator")
	}
	if rng == nil {
		return nil, errors.New("engine requires a random source")
	}

	return &Engine[S, F]{
		evaluator:   evaluator,
		initializer: initializer,
		selector:    selector,
		combiner:    combiner,
		perturbator: perturbator,
		config:      config,
		rng:         rng,
		logger:      zap.NewNop(),
		history:     make([]PoolStats, 0, config.GenerationLimit+1),
	}, nil
}

// SetLogger replaces the default no-op logger
func (e *Engine[S, F]) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
}

// SetDiversity installs the diversity measure used for pool statistics
func (e *Engine[S, F]) SetDiversity(diversity DiversityFunc[S]) {
	e.diversity = diversity
}

// Run initializes the pool and evolves it for GenerationLimit generations
// observe, when non-nil, sees generation 0 and every replaced pool
func (e *Engine[S, F]) Run(ctx context.Context, observe ObserverFunc[S, F]) (*Pool[S, F], error) {
	if err := e.Initialize(); err != nil {
		return nil, err
	}
	if observe != nil {
		observe(e.currentPool)
	}

	for iteration := 0; iteration < e.config.GenerationLimit; iteration++ {
		select {
		case <-ctx.Done():
			return e.currentPool, ctx.Err()
		default:
		}

		if err := e.Step(); err != nil {
			return e.currentPool, err
		}

		if observe != nil {
			observe(e.currentPool)
		}
	}

	return e.currentPool, nil
}

// Initialize creates, evaluates and sorts the generation 0 pool
func (e *Engine[S, F]) Initialize() error {
	e.stage = StageEvaluating

	solutions := make([]S, e.config.PoolSize)
	for i := range solutions {
		solutions[i] = e.initializer(e.rng)
	}

	members, err := e.evaluate(solutions)
	if err != nil {
		e.stage = StageIdle
		return &GenerationError{Generation: 0, Stage: StageEvaluating, Err: err}
	}
	sortMembers(members)

	e.history = e.history[:0]
	e.install(&Pool[S, F]{Members: members})
	return nil
}

// Step produces and installs the next generation
// On error the current pool is left untouched
func (e *Engine[S, F]) Step() error {
	if e.currentPool == nil {
		return ErrNoPool
	}
	generation := e.currentPool.Generation + 1
	fail := func(stage Stage, err error) error {
		e.stage = StageIdle
		return &GenerationError{Generation: generation, Stage: stage, Err: err}
	}

	// Current members were scored and sorted when installed
	e.stage = StageEvaluating
	eliteCount := min(e.config.EliteCount, len(e.currentPool.Members))
	elite := e.currentPool.Members[:eliteCount]

	offspring := make([]S, 0, e.config.PoolSize-eliteCount+1)
	for eliteCount+len(offspring) < e.config.PoolSize {
		e.stage = StageSelecting
		a, b, err := e.selector.Select(e.currentPool, e.rng)
		if err != nil {
			return fail(StageSelecting, err)
		}

		e.stage = StageRecombining
		child1, child2, err := e.combiner.Combine(a, b, e.rng)
		if err != nil {
			return fail(StageRecombining, err)
		}
		offspring = append(offspring, child1, child2)
	}

	// Elite members skip perturbation
	e.stage = StageMutating
	for i := range offspring {
		offspring[i] = e.perturbator.Perturb(offspring[i], e.config.MutationRate, e.rng)
	}

	e.stage = StageSorting
	scored, err := e.evaluate(offspring)
	if err != nil {
		return fail(StageSorting, err)
	}
	members := make([]Candidate[S, F], 0, eliteCount+len(scored))
	members = append(members, elite...)
	members = append(members, scored...)
	sortMembers(members)

	// Pairwise offspring can overshoot by one; the weakest extra is dropped
	members = members[:e.config.PoolSize]

	e.install(&Pool[S, F]{Members: members, Generation: generation})
	return nil
}

// install computes stats and replaces the current pool
func (e *Engine[S, F]) install(pool *Pool[S, F]) {
	e.stage = StageReplaced
	pool.Stats = calculateStats(pool, e.diversity)
	e.currentPool = pool
	e.history = append(e.history, pool.Stats)

	e.logger.Debug("generation replaced",
		zap.Int("generation", pool.Generation),
		zap.Float64("best", pool.Stats.BestScore),
		zap.Float64("average", pool.Stats.AverageScore),
		zap.Float64("stddev", pool.Stats.StdDev),
		zap.Float64("diversity", pool.Stats.Diversity))

	e.stage = StageIdle
}

// evaluate scores solutions, concurrently when Parallelism > 1
// Results are written by index so ordering never depends on scheduling
func (e *Engine[S, F]) evaluate(solutions []S) ([]Candidate[S, F], error) {
	members := make([]Candidate[S, F], len(solutions))

	if e.config.Parallelism <= 1 {
		for i, s := range solutions {
			score, err := e.evaluator(s)
			if err != nil {
				return nil, fmt.Errorf("candidate %d: %w", i, err)
			}
			members[i] = Candidate[S, F]{Data: s, Score: score}
		}
		return members, nil
	}

	var g errgroup.Group
	g.SetLimit(e.config.Parallelism)
	for i, s := range solutions {
		g.Go(func() error {
			score, err := e.evaluator(s)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			members[i] = Candidate[S, F]{Data: s, Score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return members, nil
}

// sortMembers orders by descending score, keeping insertion order on ties
func sortMembers[S Solution, F Numeric](members []Candidate[S, F]) {
	slices.SortStableFunc(members, func(a, b Candidate[S, F]) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Stage returns the step of the cycle the engine is in
func (e *Engine[S, F]) Stage() Stage {
	return e.stage
}

// Config returns the validated configuration
func (e *Engine[S, F]) Config() Config {
	return e.config
}

// Pool returns the current pool, nil before Initialize
func (e *Engine[S, F]) Pool() *Pool[S, F] {
	return e.currentPool
}

// GetHistory returns the statistical history of the evolution process
// Entry i describes generation i
func (e *Engine[S, F]) GetHistory() []PoolStats {
	return e.history
}

// GetBest returns the best candidate of the current pool
func (e *Engine[S, F]) GetBest() (Candidate[S, F], error) {
	if e.currentPool == nil || len(e.currentPool.Members) == 0 {
		return Candidate[S, F]{}, ErrNoPool
	}
	return e.currentPool.Members[0], nil
}
