package markov

import "gonum.org/v1/gonum/floats"

// LogForward returns the natural log of Forward(seq), accumulated in log
// space so it stays finite where Forward underflows. A sequence the model
// cannot produce yields -Inf.
func (m *Model) LogForward(seq []string) (float64, error) {
	obs, err := m.encode(seq)
	if err != nil {
		return 0, err
	}
	S := m.NumStates()
	T := len(obs)

	prev := make([]float64, S)
	curr := make([]float64, S)
	terms := make([]float64, S)

	for i := range S {
		prev[i] = m.logPrior[i] + m.logEmission[i][obs[0]]
	}
	for t := 1; t < T; t++ {
		o := obs[t]
		for i := range S {
			for k := range S {
				terms[k] = prev[k] + m.logTransition[k][i]
			}
			curr[i] = floats.LogSumExp(terms) + m.logEmission[i][o]
		}
		prev, curr = curr, prev
	}
	return floats.LogSumExp(prev), nil
}

// LogViterbi is ViterbiPath computed on log probabilities. The tie rule is the
// same; Path.Probability holds the log probability of the path.
func (m *Model) LogViterbi(seq []string) (Path, error) {
	obs, err := m.encode(seq)
	if err != nil {
		return Path{}, err
	}
	return m.decode(obs, m.logPrior, m.logTransition, m.logEmission, add), nil
}

func add(a, b float64) float64 { return a + b }
