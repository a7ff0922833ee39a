package fitness

import (
	"fmt"
	"math"

	"github.com/lixenwraith/evolve2d/genetic"
)

// Func scores a decoded point; higher is better
type Func func(x, y float64) (float64, error)

// Wave is the objective ((cos x + sin y)^2) / (x^2 + y^2)
// It is undefined at the origin and returns genetic.ErrDomain there
func Wave(x, y float64) (float64, error) {
	denominator := x*x + y*y
	if denominator == 0 {
		return 0, fmt.Errorf("%w: (%v, %v) zeroes the denominator", genetic.ErrDomain, x, y)
	}
	numerator := math.Cos(x) + math.Sin(y)
	return numerator * numerator / denominator, nil
}
