// Package markov implements likelihood and decoding for discrete hidden Markov models.
//
// A Model is built once from two label sets and three probability tables and is
// read-only afterwards, so Forward and Viterbi may run concurrently against it.
//
//	m, err := markov.New(
//	    []string{"sun", "rain"},
//	    []string{"hot", "cold"},
//	    []float64{0.5, 0.5},
//	    [][]float64{{0.7, 0.3}, {0.4, 0.6}},
//	    [][]float64{{0.8, 0.2}, {0.4, 0.6}},
//	)
//	p, _ := m.Forward([]string{"sun", "sun", "rain"})
//	states, _ := m.Viterbi([]string{"sun", "sun", "rain"}) // [hot hot cold]
package markov

// Alphabet maps between string labels and dense integer IDs.
type Alphabet struct {
	name   string
	toID   map[string]int
	labels []string
}

// NewAlphabet builds an alphabet over labels, assigning IDs in slice order.
// A label that appears twice yields a *DuplicateLabelError.
func NewAlphabet(name string, labels []string) (*Alphabet, error) {
	a := &Alphabet{
		name:   name,
		toID:   make(map[string]int, len(labels)),
		labels: make([]string, 0, len(labels)),
	}
	for id, s := range labels {
		if first, ok := a.toID[s]; ok {
			return nil, &DuplicateLabelError{Alphabet: name, Label: s, First: first, Second: id}
		}
		a.toID[s] = id
		a.labels = append(a.labels, s)
	}
	return a, nil
}

// Get returns the ID for a label, or -1 if not found.
func (a *Alphabet) Get(s string) int {
	if id, ok := a.toID[s]; ok {
		return id
	}
	return -1
}

// Label returns the label for an ID. It panics if id is out of range.
func (a *Alphabet) Label(id int) string {
	return a.labels[id]
}

// Labels returns a copy of the labels in ID order.
func (a *Alphabet) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Size returns the number of entries.
func (a *Alphabet) Size() int {
	return len(a.labels)
}
