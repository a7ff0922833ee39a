// Package genome implements fixed-length binary genomes and their operators
// All operators return new genomes and never modify their inputs
package genome

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lixenwraith/evolve2d/genetic"
)

// Genome is an ordered sequence of bits, each element 0 or 1
type Genome []uint8

// Random draws length independent uniform bits
func Random(length int, rng *rand.Rand) Genome {
	g := make(Genome, length)
	for i := range g {
		g[i] = uint8(rng.IntN(2))
	}
	return g
}

// Parse reads a genome from its textual form, e.g. "0110"
func Parse(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			g[i] = 0
		case '1':
			g[i] = 1
		default:
			return nil, fmt.Errorf("%w: symbol %q at position %d", genetic.ErrInvalidGenome, s[i], i)
		}
	}
	return g, nil
}

// Zeros returns a genome of length 0-bits
func Zeros(length int) Genome {
	return make(Genome, length)
}

// Ones returns a genome of length 1-bits
func Ones(length int) Genome {
	g := make(Genome, length)
	for i := range g {
		g[i] = 1
	}
	return g
}

// String renders the genome as a string of '0' and '1'
func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, b := range g {
		sb.WriteByte('0' + b&1)
	}
	return sb.String()
}

// Clone returns an independent copy
func (g Genome) Clone() Genome {
	if g == nil {
		return nil
	}
	out := make(Genome, len(g))
	copy(out, g)
	return out
}

// Equal reports whether both genomes hold the same bits
func (g Genome) Equal(other Genome) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate checks that every element is a bit
func (g Genome) Validate() error {
	for i, b := range g {
		if b > 1 {
			return fmt.Errorf("%w: value %d at position %d", genetic.ErrInvalidGenome, b, i)
		}
	}
	return nil
}
