package genetic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGenome reports a malformed genome (odd or empty length, bad symbols)
	ErrInvalidGenome = errors.New("invalid genome")

	// ErrLengthMismatch reports crossover operands of different lengths
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidGenome)

	// ErrDomain reports fitness evaluated where the objective is undefined
	ErrDomain = errors.New("fitness undefined")

	// ErrSelection reports a pool that cannot support proportionate sampling
	ErrSelection = errors.New("selection failed")
)

// GenerationError wraps a failure raised while producing a generation
type GenerationError struct {
	// Generation is the index of the generation being produced
	Generation int
	// Stage is the step of the cycle that failed
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %d: %s: %v", e.Generation, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Kind names the failure category of err for user-facing messages
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrLengthMismatch):
		return "length mismatch"
	case errors.Is(err, ErrInvalidGenome):
		return "invalid genome"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrSelection):
		return "selection"
	default:
		return "unknown"
	}
}
