package markov

// Forward returns the probability of the observation sequence under the model,
// summed over every hidden-state path. Probabilities are multiplied directly,
// so long sequences may underflow to 0; see LogForward.
func (m *Model) Forward(seq []string) (float64, error) {
	alpha, err := m.ForwardMatrix(seq)
	if err != nil {
		return 0, err
	}
	last := len(seq) - 1
	var p float64
	for i := range alpha {
		p += alpha[i][last]
	}
	return p, nil
}

// ForwardMatrix returns the [S][T] table of forward variables, where
// alpha[i][t] is the joint probability of the first t+1 observations and
// state i at time t.
func (m *Model) ForwardMatrix(seq []string) ([][]float64, error) {
	obs, err := m.encode(seq)
	if err != nil {
		return nil, err
	}
	S := m.NumStates()
	T := len(obs)
	alpha := newTable[float64](S, T)

	// t = 0
	for i := range S {
		alpha[i][0] = m.prior[i] * m.emission[i][obs[0]]
	}

	// t = 1..T-1
	for t := 1; t < T; t++ {
		o := obs[t]
		for i := range S {
			var sum float64
			for k := range S {
				sum += alpha[k][t-1] * m.transition[k][i] * m.emission[i][o]
			}
			alpha[i][t] = sum
		}
	}
	return alpha, nil
}
