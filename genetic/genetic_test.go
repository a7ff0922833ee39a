package genetic

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func poolOf(scores ...float64) *Pool[int, float64] {
	pool := &Pool[int, float64]{}
	for i, s := range scores {
		pool.Members = append(pool.Members, Candidate[int, float64]{Data: i, Score: s})
	}
	return pool
}

func TestRouletteSelector_Distinct(t *testing.T) {
	rs := &RouletteSelector[int, float64]{}
	rng := NewRand(1)
	pool := poolOf(5, 1, 1, 0.5, 3)

	for i := 0; i < 5000; i++ {
		a, b, err := rs.Select(pool, rng)
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if a.Data == b.Data {
			t.Fatalf("draw %d selected index %d twice", i, a.Data)
		}
	}
}

func TestRouletteSelector_SkipsZeroWeight(t *testing.T) {
	rs := &RouletteSelector[int, float64]{}
	rng := NewRand(2)
	pool := poolOf(0, 1, 2, 0)

	for i := 0; i < 1000; i++ {
		a, b, err := rs.Select(pool, rng)
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if a.Score == 0 || b.Score == 0 {
			t.Fatalf("zero-score candidate selected: %d, %d", a.Data, b.Data)
		}
	}
}

func TestRouletteSelector_Proportionate(t *testing.T) {
	rs := &RouletteSelector[int, float64]{}
	rng := NewRand(3)
	pool := poolOf(1, 3)

	const draws = 8000
	heavyFirst := 0
	for i := 0; i < draws; i++ {
		a, _, err := rs.Select(pool, rng)
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if a.Data == 1 {
			heavyFirst++
		}
	}

	observed := float64(heavyFirst) / draws
	if math.Abs(observed-0.75) > 0.03 {
		t.Errorf("expected first pick frequency near 0.75, got %.3f", observed)
	}
}

func TestRouletteSelector_Degenerate(t *testing.T) {
	rs := &RouletteSelector[int, float64]{}

	tests := []struct {
		name string
		pool *Pool[int, float64]
	}{
		{"nil pool", nil},
		{"empty", poolOf()},
		{"single member", poolOf(1)},
		{"all zero", poolOf(0, 0, 0)},
		{"one non-zero", poolOf(0, 4, 0)},
		{"negative", poolOf(1, -1, 2)},
		{"nan", poolOf(1, math.NaN(), 2)},
		{"infinite", poolOf(1, math.Inf(1), 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := rs.Select(tt.pool, NewRand(1))
			if !errors.Is(err, ErrSelection) {
				t.Errorf("expected ErrSelection, got %v", err)
			}
		})
	}
}

func TestParameterBounds(t *testing.T) {
	b := ParameterBounds{Min: -5, Max: 5}

	if got := b.Lerp(0); got != -5 {
		t.Errorf("expected -5 at 0, got %v", got)
	}
	if got := b.Lerp(1); got != 5 {
		t.Errorf("expected 5 at 1, got %v", got)
	}
	if got := b.Normalize(0); got != 0.5 {
		t.Errorf("expected 0.5 at midpoint, got %v", got)
	}
	if got := b.Clamp(7); got != 5 {
		t.Errorf("expected clamp to 5, got %v", got)
	}
	if b.Contains(5.0001) {
		t.Error("expected 5.0001 outside bounds")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&GenerationError{Generation: 3, Stage: StageSelecting, Err: ErrSelection}, "selection"},
		{ErrLengthMismatch, "length mismatch"},
		{ErrInvalidGenome, "invalid genome"},
		{ErrDomain, "domain"},
		{errors.New("other"), "unknown"},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, expected %q", tt.err, got, tt.want)
		}
	}
}

func TestGenerationError_Message(t *testing.T) {
	err := &GenerationError{Generation: 12, Stage: StageRecombining, Err: ErrLengthMismatch}

	want := "generation 12: recombining: invalid genome: length mismatch"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrInvalidGenome) {
		t.Error("expected wrapped cause to match ErrInvalidGenome")
	}
}

func TestStage_String(t *testing.T) {
	if StageSorting.String() != "sorting" {
		t.Errorf("expected sorting, got %s", StageSorting)
	}
	if Stage(200).String() != "unknown" {
		t.Errorf("expected unknown, got %s", Stage(200))
	}
}
