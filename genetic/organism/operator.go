package organism

import (
	"math/rand/v2"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/genome"
)

// Crossover combines parent genomes at a single point and builds two children
type Crossover struct {
	Factory Factory
}

var _ genetic.Combiner[Organism, float64] = (*Crossover)(nil)

// Combine implements genetic.Combiner
func (c *Crossover) Combine(a, b genetic.Candidate[Organism, float64], rng *rand.Rand) (Organism, Organism, error) {
	g1, g2, err := genome.Crossover(a.Data.Genome, b.Data.Genome, rng)
	if err != nil {
		return Organism{}, Organism{}, err
	}
	return c.Factory.New(g1), c.Factory.New(g2), nil
}

// BitFlip mutates an organism by independent per-bit flips
type BitFlip struct {
	Factory Factory
}

var _ genetic.Perturbator[Organism] = (*BitFlip)(nil)

// Perturb implements genetic.Perturbator; the input organism is not modified
func (bf *BitFlip) Perturb(o Organism, rate float64, rng *rand.Rand) Organism {
	return bf.Factory.New(genome.Mutate(o.Genome, rate, rng))
}

// NewEngine wires the factory and the standard operators into an engine
func NewEngine(f Factory, config genetic.Config, rng *rand.Rand) (*genetic.Engine[Organism, float64], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	engine, err := genetic.NewEngine[Organism, float64](
		f.Evaluate,
		f.Random,
		&genetic.RouletteSelector[Organism, float64]{},
		&Crossover{Factory: f},
		&BitFlip{Factory: f},
		config,
		rng,
	)
	if err != nil {
		return nil, err
	}

	engine.SetDiversity(func(members []Organism) float64 {
		genomes := make([]genome.Genome, len(members))
		for i, m := range members {
			genomes[i] = m.Genome
		}
		return genome.Diversity(genomes)
	})
	return engine, nil
}
