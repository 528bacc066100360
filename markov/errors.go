package markov

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrDimension      = errors.New("dimension mismatch")
	ErrStochasticity  = errors.New("probabilities do not sum to 1")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrUnknownSymbol  = errors.New("unknown observation symbol")
	ErrEmptySequence  = errors.New("empty observation sequence")
)

// DimensionError reports a table whose shape disagrees with the label sets.
type DimensionError struct {
	Context string
	Want    int
	Got     int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: want %d, got %d", ErrDimension, e.Context, e.Want, e.Got)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// StochasticityError reports a distribution that does not sum to 1 within Epsilon.
// Row is -1 for the prior.
type StochasticityError struct {
	Table string
	Row   int
	Sum   float64
}

func (e *StochasticityError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s sums to %v", ErrStochasticity, e.Table, e.Sum)
	}
	return fmt.Sprintf("%s: %s row %d sums to %v", ErrStochasticity, e.Table, e.Row, e.Sum)
}

func (e *StochasticityError) Is(target error) bool { return target == ErrStochasticity }

// DuplicateLabelError reports a label that occurs at two positions of an alphabet.
type DuplicateLabelError struct {
	Alphabet string
	Label    string
	First    int
	Second   int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("%s: %s label %q at %d and %d", ErrDuplicateLabel, e.Alphabet, e.Label, e.First, e.Second)
}

func (e *DuplicateLabelError) Is(target error) bool { return target == ErrDuplicateLabel }

// UnknownSymbolError reports an observation that is not in the model's alphabet.
type UnknownSymbolError struct {
	Symbol   string
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnknownSymbol, e.Symbol, e.Position)
}

func (e *UnknownSymbolError) Is(target error) bool { return target == ErrUnknownSymbol }
