package markov

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance for a probability row summing to 1.
const Epsilon = 1e-7

// Model holds the parameters of a discrete hidden Markov model.
// Tables are indexed by the IDs of the two alphabets:
//
//	prior[i]         P(state_0 = i)
//	transition[k][i] P(state_t = i | state_t-1 = k)
//	emission[i][o]   P(obs_t = o | state_t = i)
type Model struct {
	observations *Alphabet
	states       *Alphabet

	prior      []float64
	transition [][]float64
	emission   [][]float64

	// Log tables for LogForward and LogViterbi.
	logPrior      []float64
	logTransition [][]float64
	logEmission   [][]float64
}

// New validates the tables and returns a model owning copies of them.
// Shapes are checked before sums, so a table that is both wrong-sized and
// non-stochastic yields a *DimensionError.
func New(observations, states []string, prior []float64, transition, emission [][]float64) (*Model, error) {
	obsAlpha, err := NewAlphabet("observation", observations)
	if err != nil {
		return nil, err
	}
	stateAlpha, err := NewAlphabet("hidden state", states)
	if err != nil {
		return nil, err
	}
	S := stateAlpha.Size()
	O := obsAlpha.Size()

	if len(prior) != S {
		return nil, &DimensionError{Context: "prior vs hidden states", Want: S, Got: len(prior)}
	}
	if len(transition) != S {
		return nil, &DimensionError{Context: "transition matrix", Want: S, Got: len(transition)}
	}
	for _, row := range transition {
		if len(row) != S {
			return nil, &DimensionError{Context: "transition matrix", Want: S, Got: len(row)}
		}
	}
	if len(emission) != S {
		return nil, &DimensionError{Context: "emission rows vs hidden states", Want: S, Got: len(emission)}
	}
	for _, row := range emission {
		if len(row) != O {
			return nil, &DimensionError{Context: "emission cols vs observation states", Want: O, Got: len(row)}
		}
	}

	if sum := floats.Sum(prior); !scalar.EqualWithinAbs(sum, 1, Epsilon) {
		return nil, &StochasticityError{Table: "prior", Row: -1, Sum: sum}
	}
	for i, row := range emission {
		if sum := floats.Sum(row); !scalar.EqualWithinAbs(sum, 1, Epsilon) {
			return nil, &StochasticityError{Table: "emission", Row: i, Sum: sum}
		}
	}
	for i, row := range transition {
		if sum := floats.Sum(row); !scalar.EqualWithinAbs(sum, 1, Epsilon) {
			return nil, &StochasticityError{Table: "transition", Row: i, Sum: sum}
		}
	}

	m := &Model{
		observations: obsAlpha,
		states:       stateAlpha,
		prior:        cloneVector(prior),
		transition:   cloneMatrix(transition),
		emission:     cloneMatrix(emission),
	}
	m.logPrior = logVector(m.prior)
	m.logTransition = make([][]float64, S)
	m.logEmission = make([][]float64, S)
	for i := range S {
		m.logTransition[i] = logVector(m.transition[i])
		m.logEmission[i] = logVector(m.emission[i])
	}
	return m, nil
}

// NumStates returns the number of hidden states.
func (m *Model) NumStates() int { return m.states.Size() }

// NumObservations returns the number of observation symbols.
func (m *Model) NumObservations() int { return m.observations.Size() }

// Observations returns the observation labels in index order.
func (m *Model) Observations() []string { return m.observations.Labels() }

// States returns the hidden-state labels in index order.
func (m *Model) States() []string { return m.states.Labels() }

// ObservationIndex returns the index of an observation label, or -1.
func (m *Model) ObservationIndex(s string) int { return m.observations.Get(s) }

// StateIndex returns the index of a hidden-state label, or -1.
func (m *Model) StateIndex(s string) int { return m.states.Get(s) }

// Prior returns a copy of the initial state distribution.
func (m *Model) Prior() []float64 { return cloneVector(m.prior) }

// Transition returns a copy of the transition matrix.
func (m *Model) Transition() [][]float64 { return cloneMatrix(m.transition) }

// Emission returns a copy of the emission matrix.
func (m *Model) Emission() [][]float64 { return cloneMatrix(m.emission) }

// encode maps an observation sequence to alphabet IDs.
func (m *Model) encode(seq []string) ([]int, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	obs := make([]int, len(seq))
	for t, s := range seq {
		id := m.observations.Get(s)
		if id < 0 {
			return nil, &UnknownSymbolError{Symbol: s, Position: t}
		}
		obs[t] = id
	}
	return obs, nil
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = cloneVector(row)
	}
	return out
}

func logVector(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, p := range v {
		out[i] = math.Log(p)
	}
	return out
}

// newTable allocates a rows x cols matrix backed by one slice.
func newTable[T any](rows, cols int) [][]T {
	backing := make([]T, rows*cols)
	table := make([][]T, rows)
	for i := range rows {
		table[i] = backing[i*cols : (i+1)*cols]
	}
	return table
}
