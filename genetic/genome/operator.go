package genome

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/evolve2d/genetic"
)

// Crossover performs single-point recombination at a uniform point in [0, len)
func Crossover(a, b Genome, rng *rand.Rand) (Genome, Genome, error) {
	if err := checkPair(a, b); err != nil {
		return nil, nil, err
	}
	return splice(a, b, rng.IntN(len(a)))
}

// CrossoverAt recombines at point: child 1 takes a[:point] + b[point:],
// child 2 takes b[:point] + a[point:]
func CrossoverAt(a, b Genome, point int) (Genome, Genome, error) {
	if err := checkPair(a, b); err != nil {
		return nil, nil, err
	}
	if point < 0 || point > len(a) {
		return nil, nil, fmt.Errorf("%w: crossover point %d outside [0, %d]", genetic.ErrInvalidGenome, point, len(a))
	}
	return splice(a, b, point)
}

func checkPair(a, b Genome) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", genetic.ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return fmt.Errorf("%w: empty parents", genetic.ErrInvalidGenome)
	}
	return nil
}

func splice(a, b Genome, point int) (Genome, Genome, error) {
	child1 := make(Genome, len(a))
	child2 := make(Genome, len(a))
	copy(child1, a[:point])
	copy(child1[point:], b[point:])
	copy(child2, b[:point])
	copy(child2[point:], a[point:])
	return child1, child2, nil
}

// Mutate flips each bit independently with probability rate
// A draw u in [0, 1) flips when u < rate, so rate 0 never flips and rate 1 always does
func Mutate(g Genome, rate float64, rng *rand.Rand) Genome {
	out := make(Genome, len(g))
	for i, b := range g {
		// Strict < keeps rate 0 exact; u == rate has probability near 2^-53
		if rng.Float64() < rate {
			b ^= 1
		}
		out[i] = b
	}
	return out
}

// Diversity returns the mean per-locus heterozygosity 4p(1-p) of equal-length genomes
// 0 when every genome is identical, 1 when every locus is split evenly
func Diversity(genomes []Genome) float64 {
	if len(genomes) < 2 {
		return 0
	}
	length := len(genomes[0])
	if length == 0 {
		return 0
	}

	ones := make([]int, length)
	for _, g := range genomes {
		for i := 0; i < length && i < len(g); i++ {
			ones[i] += int(g[i])
		}
	}

	var total float64
	n := float64(len(genomes))
	for _, count := range ones {
		p := float64(count) / n
		total += 4 * p * (1 - p)
	}
	return total / float64(length)
}
