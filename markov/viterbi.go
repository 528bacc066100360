package markov

// Path is a decoded hidden-state sequence.
type Path struct {
	States  []string `json:"states"`
	Indices []int    `json:"indices"`
	// Probability of the path jointly with the observations. LogViterbi
	// stores the natural log instead.
	Probability float64 `json:"probability"`
}

// Viterbi returns the most probable hidden-state sequence for seq.
func (m *Model) Viterbi(seq []string) ([]string, error) {
	p, err := m.ViterbiPath(seq)
	if err != nil {
		return nil, err
	}
	return p.States, nil
}

// ViterbiPath finds the best state path using the Viterbi algorithm.
//
// Ties are broken towards the lowest state index: a candidate replaces the
// incumbent only when strictly greater, both when choosing a predecessor and
// when choosing the final state.
func (m *Model) ViterbiPath(seq []string) (Path, error) {
	obs, err := m.encode(seq)
	if err != nil {
		return Path{}, err
	}
	return m.decode(obs, m.prior, m.transition, m.emission, mul), nil
}

func mul(a, b float64) float64 { return a * b }

// decode runs the Viterbi recursion with combine as the path score operator,
// multiplication for probabilities and addition for log probabilities.
func (m *Model) decode(obs []int, prior []float64, transition, emission [][]float64, combine func(a, b float64) float64) Path {
	S := m.NumStates()
	T := len(obs)

	// delta[i][t] = best score of a path ending in state i at time t
	delta := newTable[float64](S, T)
	// psi[i][t] = predecessor of state i at time t on that path
	psi := newTable[int](S, T)
	scores := make([]float64, S)

	// t = 0
	for i := range S {
		delta[i][0] = combine(prior[i], emission[i][obs[0]])
	}

	// t = 1..T-1
	for t := 1; t < T; t++ {
		o := obs[t]
		for i := range S {
			for k := range S {
				scores[k] = combine(delta[k][t-1], transition[k][i])
			}
			bestPrev, bestScore := argmax(scores)
			psi[i][t] = bestPrev
			delta[i][t] = combine(emission[i][o], bestScore)
		}
	}

	// Find best final state
	for i := range S {
		scores[i] = delta[i][T-1]
	}
	bestState, bestScore := argmax(scores)

	// Backtrack
	path := make([]int, T)
	path[T-1] = bestState
	for t := T - 1; t > 0; t-- {
		path[t-1] = psi[path[t]][t]
	}

	states := make([]string, T)
	for t, id := range path {
		states[t] = m.states.Label(id)
	}
	return Path{States: states, Indices: path, Probability: bestScore}
}

// argmax returns the first index holding the maximum of scores. Index 0 is
// the starting incumbent, so an all-zero or all -Inf slice yields 0.
func argmax(scores []float64) (int, float64) {
	best, bestScore := 0, scores[0]
	for k := 1; k < len(scores); k++ {
		if scores[k] > bestScore {
			best, bestScore = k, scores[k]
		}
	}
	return best, bestScore
}
