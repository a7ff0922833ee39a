// Package report renders the best organism of a generation
package report

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/evolve2d/genetic/organism"
)

// Reporter receives the best organism at reporting checkpoints
type Reporter interface {
	Report(generation int, best organism.Organism) error
}

// Field is one labelled line of a report
type Field struct {
	Label string
	Value string
}

// Fields derives the labelled values shown for an organism
func Fields(best organism.Organism) ([]Field, error) {
	p, err := best.Decode()
	if err != nil {
		return nil, fmt.Errorf("report decode: %w", err)
	}
	score, err := best.Fitness()
	if err != nil {
		return nil, fmt.Errorf("report fitness: %w", err)
	}

	return []Field{
		{Label: "Genome", Value: best.Genome.String()},
		{Label: "x", Value: formatFloat(p.X)},
		{Label: "y", Value: formatFloat(p.Y)},
		{Label: "Fitness", Value: formatFloat(score)},
	}, nil
}

// Heading titles the report block of a generation
func Heading(generation int) string {
	return "Generation " + strconv.Itoa(generation)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Schedule decides which generations are reported
// Generation 0 and every Limit/Count-th generation are due
type Schedule struct {
	Limit int
	Count int
}

// Interval returns the spacing between checkpoints, at least 1
func (s Schedule) Interval() int {
	if s.Count <= 0 {
		return max(1, s.Limit)
	}
	return max(1, s.Limit/s.Count)
}

// Due reports whether generation is a checkpoint
func (s Schedule) Due(generation int) bool {
	return generation == 0 || generation%s.Interval() == 0
}
