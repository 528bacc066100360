// Package storage provides access to model files and annotated observation sequences.
package storage

// Annotation is an observation sequence with an optional expected decoding.
type Annotation struct {
	Name         string   `yaml:"name"`
	Observations []string `yaml:"observations"`
	States       []string `yaml:"states,omitempty"`     // expected Viterbi path
	Likelihood   *float64 `yaml:"likelihood,omitempty"` // expected forward probability

	// Computed
	File  string `yaml:"-"` // file name relative to the sequences folder
	Index int    `yaml:"-"` // position within that file
}

// Labeled reports whether the annotation carries an expected state path.
func (a Annotation) Labeled() bool {
	return len(a.States) > 0
}
