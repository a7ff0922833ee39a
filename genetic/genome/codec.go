package genome

import (
	"fmt"
	"math"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/parameter"
)

// maxExactBits is the widest half whose integer value a float64 holds exactly
const maxExactBits = 53

// Point is a decoded coordinate pair
type Point struct {
	X, Y float64
}

// Codec maps genomes onto a bounded 2D domain
// The first half of a genome encodes X, the second half Y
type Codec struct {
	// Length is the genome length produced by Encode
	Length int
	X, Y   genetic.ParameterBounds
}

var _ genetic.Codec[Genome, Point] = Codec{}

// DefaultCodec returns the standard 32-bit codec over [-5, 5] on both axes
func DefaultCodec() Codec {
	bounds := genetic.ParameterBounds{Min: parameter.GADomainMin, Max: parameter.GADomainMax}
	return Codec{Length: parameter.GAGenomeLength, X: bounds, Y: bounds}
}

// Decode maps a genome to its point
// Each half is read as an unsigned integer, normalized by 2^bits - 1 and
// mapped into its axis bounds
func (c Codec) Decode(g Genome) (Point, error) {
	if len(g) == 0 || len(g)%2 != 0 {
		return Point{}, fmt.Errorf("%w: length %d cannot be split into two equal halves", genetic.ErrInvalidGenome, len(g))
	}
	if err := g.Validate(); err != nil {
		return Point{}, err
	}

	half := len(g) / 2
	return Point{
		X: c.X.Lerp(normalize(g[:half])),
		Y: c.Y.Lerp(normalize(g[half:])),
	}, nil
}

// Encode returns the genome of length c.Length whose decoded point is nearest to p
// Coordinates outside the bounds are clamped first
func (c Codec) Encode(p Point) (Genome, error) {
	if c.Length <= 0 || c.Length%2 != 0 {
		return nil, fmt.Errorf("%w: codec length %d cannot be split into two equal halves", genetic.ErrInvalidGenome, c.Length)
	}
	half := c.Length / 2
	if half > maxExactBits {
		return nil, fmt.Errorf("%w: half width %d exceeds %d bits", genetic.ErrInvalidGenome, half, maxExactBits)
	}

	g := make(Genome, 0, c.Length)
	g = appendQuantized(g, c.X.Normalize(p.X), half)
	g = appendQuantized(g, c.Y.Normalize(p.Y), half)
	return g, nil
}

// normalize reads bits as an unsigned integer and divides by the largest value of that width
func normalize(bits Genome) float64 {
	var v float64
	for _, b := range bits {
		v = v*2 + float64(b)
	}
	return v / (math.Exp2(float64(len(bits))) - 1)
}

// appendQuantized appends the most significant bit first encoding of round(n * (2^bits - 1))
func appendQuantized(g Genome, n float64, bits int) Genome {
	v := uint64(math.Round(n * (math.Exp2(float64(bits)) - 1)))
	for i := bits - 1; i >= 0; i-- {
		g = append(g, uint8(v>>uint(i)&1))
	}
	return g
}
