package organism

import (
	"errors"
	"testing"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/fitness"
	"github.com/lixenwraith/evolve2d/genetic/genome"
)

func TestFactory_Random(t *testing.T) {
	f := NewFactory()
	o := f.Random(genetic.NewRand(1))

	if len(o.Genome) != 32 {
		t.Fatalf("expected 32-bit genome, got %d", len(o.Genome))
	}
	if err := o.Genome.Validate(); err != nil {
		t.Errorf("random organism has invalid genome: %v", err)
	}
}

func TestOrganism_DelegatesToCodecAndObjective(t *testing.T) {
	f := NewFactory()
	g, _ := genome.Parse("11000000000000000011111111111111")
	o := f.New(g)

	p, err := o.Decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want, _ := genome.DefaultCodec().Decode(g)
	if p != want {
		t.Errorf("expected %v, got %v", want, p)
	}

	score, err := o.Fitness()
	if err != nil {
		t.Fatalf("fitness failed: %v", err)
	}
	wantScore, _ := fitness.Wave(p.X, p.Y)
	if score != wantScore {
		t.Errorf("expected %v, got %v", wantScore, score)
	}

	evaluated, err := f.Evaluate(o)
	if err != nil || evaluated != score {
		t.Errorf("expected evaluator to return %v, got %v (%v)", score, evaluated, err)
	}
}

func TestOrganism_FitnessPropagatesErrors(t *testing.T) {
	f := NewFactory()

	// Odd genome cannot be decoded
	if _, err := f.New(genome.Zeros(31)).Fitness(); !errors.Is(err, genetic.ErrInvalidGenome) {
		t.Errorf("expected ErrInvalidGenome, got %v", err)
	}

	// Objective failure surfaces unchanged
	f.Objective = func(x, y float64) (float64, error) { return fitness.Wave(0, 0) }
	if _, err := f.Random(genetic.NewRand(2)).Fitness(); !errors.Is(err, genetic.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestFactory_Validate(t *testing.T) {
	if err := NewFactory().Validate(); err != nil {
		t.Errorf("default factory invalid: %v", err)
	}

	f := NewFactory()
	f.Length = 7
	if err := f.Validate(); !errors.Is(err, genetic.ErrInvalidGenome) {
		t.Errorf("expected ErrInvalidGenome for odd length, got %v", err)
	}

	f = NewFactory()
	f.Objective = nil
	if err := f.Validate(); err == nil {
		t.Error("expected error for missing objective")
	}
}

func TestCrossover_BuildsChildren(t *testing.T) {
	f := NewFactory()
	c := &Crossover{Factory: f}
	rng := genetic.NewRand(3)

	a := genetic.Candidate[Organism, float64]{Data: f.New(genome.Zeros(32))}
	b := genetic.Candidate[Organism, float64]{Data: f.New(genome.Ones(32))}

	child1, child2, err := c.Combine(a, b, rng)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}

	for i := range child1.Genome {
		if child1.Genome[i] == child2.Genome[i] {
			t.Fatalf("children agree at bit %d despite opposite parents", i)
		}
	}
	if _, err := child1.Fitness(); err != nil {
		t.Errorf("child is not evaluable: %v", err)
	}
	if !a.Data.Genome.Equal(genome.Zeros(32)) || !b.Data.Genome.Equal(genome.Ones(32)) {
		t.Error("combine modified a parent")
	}
}

func TestCrossover_LengthMismatch(t *testing.T) {
	f := NewFactory()
	c := &Crossover{Factory: f}

	a := genetic.Candidate[Organism, float64]{Data: f.New(genome.Zeros(32))}
	b := genetic.Candidate[Organism, float64]{Data: f.New(genome.Zeros(30))}

	if _, _, err := c.Combine(a, b, genetic.NewRand(1)); !errors.Is(err, genetic.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestBitFlip_Boundaries(t *testing.T) {
	f := NewFactory()
	bf := &BitFlip{Factory: f}
	rng := genetic.NewRand(4)
	o := f.Random(rng)

	if same := bf.Perturb(o, 0, rng); !same.Genome.Equal(o.Genome) {
		t.Errorf("rate 0 changed %s to %s", o.Genome, same.Genome)
	}

	flipped := bf.Perturb(o, 1, rng)
	for i := range o.Genome {
		if flipped.Genome[i] == o.Genome[i] {
			t.Fatalf("rate 1 left bit %d unflipped", i)
		}
	}
}

func TestNewEngine_RejectsInvalidFactory(t *testing.T) {
	f := NewFactory()
	f.Codec = nil

	if _, err := NewEngine(f, genetic.DefaultConfig(), genetic.NewRand(1)); err == nil {
		t.Error("expected error for factory without codec")
	}
}
