// Package organism couples binary genomes with a codec and an objective
// and adapts genome operators to the generic engine
package organism

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/fitness"
	"github.com/lixenwraith/evolve2d/genetic/genome"
)

// Organism is a single candidate solution
// Decoded point and fitness are derived from the genome on every call
type Organism struct {
	Genome genome.Genome

	codec     genetic.Codec[genome.Genome, genome.Point]
	objective fitness.Func
}

// Decode maps the genome to its point
func (o Organism) Decode() (genome.Point, error) {
	return o.codec.Decode(o.Genome)
}

// Fitness decodes the genome and scores the point
func (o Organism) Fitness() (float64, error) {
	p, err := o.Decode()
	if err != nil {
		return 0, err
	}
	return o.objective(p.X, p.Y)
}

// Factory is the construction capability handed to the engine
type Factory struct {
	// Length is the bit count of random genomes
	Length    int
	Codec     genetic.Codec[genome.Genome, genome.Point]
	Objective fitness.Func
}

// NewFactory returns a factory using the default codec and the wave objective
func NewFactory() Factory {
	codec := genome.DefaultCodec()
	return Factory{Length: codec.Length, Codec: codec, Objective: fitness.Wave}
}

// Validate checks the factory can build decodable organisms
func (f Factory) Validate() error {
	if f.Codec == nil || f.Objective == nil {
		return fmt.Errorf("organism factory requires a codec and an objective")
	}
	if f.Length <= 0 || f.Length%2 != 0 {
		return fmt.Errorf("%w: factory length %d must be positive and even", genetic.ErrInvalidGenome, f.Length)
	}
	return nil
}

// New wraps an existing genome
func (f Factory) New(g genome.Genome) Organism {
	return Organism{Genome: g, codec: f.Codec, objective: f.Objective}
}

// Random creates an organism with a uniformly random genome of f.Length bits
func (f Factory) Random(rng *rand.Rand) Organism {
	return f.New(genome.Random(f.Length, rng))
}

// Evaluate is the engine evaluator for organisms
func (f Factory) Evaluate(o Organism) (float64, error) {
	return o.Fitness()
}
