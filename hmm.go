// Package hmm scores and decodes observation sequences with a discrete hidden Markov model.
//
// It wraps a validated markov.Model loaded from a JSON or YAML file:
//
//	d, _ := hmm.Load("weather.yaml")
//	p, _ := d.Likelihood([]string{"sun", "sun", "rain"})  // 0.1344
//	states, _ := d.Decode([]string{"sun", "sun", "rain"}) // [hot hot cold]
package hmm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/happyhackingspace/hmm/internal/storage"
	"github.com/happyhackingspace/hmm/markov"
)

// Decoder wraps a hidden Markov model.
type Decoder struct {
	m *markov.Model
}

// Decoding holds the decoded state path for one observation sequence.
type Decoding struct {
	Observations []string `json:"observations"`
	States       []string `json:"states"`
	Probability  float64  `json:"probability"`
	Log          bool     `json:"log,omitempty"`
}

// MarshalJSON writes a non-finite probability, such as the log of an
// impossible path, as null.
func (d Decoding) MarshalJSON() ([]byte, error) {
	type decoding Decoding
	out := struct {
		decoding
		Probability *float64 `json:"probability"`
	}{decoding: decoding(d)}
	if !math.IsInf(d.Probability, 0) && !math.IsNaN(d.Probability) {
		out.Probability = &d.Probability
	}
	return json.Marshal(out)
}

var errNotInitialized = errors.New("hmm: decoder not initialized")

// New loads the first model file named in storage.ModelNames, searching the
// current directory and parent directories up to the module root (where
// go.mod lives), then ModelDir.
func New() (*Decoder, error) {
	path, err := findModel()
	if err != nil {
		return nil, fmt.Errorf("hmm: %w", err)
	}
	return Load(path)
}

func findModel() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if path, err := storage.NewStorage(dir).ModelPath(); err == nil {
			return path, nil
		}
		// Stop at module root
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return storage.NewStorage(ModelDir()).ModelPath()
}

// ModelDir returns the per-user directory for model files.
func ModelDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hmm")
	}
	return filepath.Join(dir, "hmm")
}

// Load loads and validates a model file.
func Load(path string) (*Decoder, error) {
	m, err := markov.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("hmm: %w", err)
	}
	return &Decoder{m: m}, nil
}

// FromModel wraps an already validated model.
func FromModel(m *markov.Model) *Decoder {
	return &Decoder{m: m}
}

// Model returns the underlying model.
func (d *Decoder) Model() *markov.Model {
	return d.m
}

// Save writes the model to a file, YAML or JSON by extension.
func (d *Decoder) Save(path string) error {
	if d.m == nil {
		return errNotInitialized
	}
	if err := markov.SaveModel(d.m, path); err != nil {
		return fmt.Errorf("hmm: %w", err)
	}
	return nil
}

// Likelihood returns the probability of the observation sequence.
func (d *Decoder) Likelihood(seq []string) (float64, error) {
	if d.m == nil {
		return 0, errNotInitialized
	}
	p, err := d.m.Forward(seq)
	if err != nil {
		return 0, fmt.Errorf("hmm: %w", err)
	}
	return p, nil
}

// LogLikelihood returns the natural log of the probability of the observation
// sequence, computed in log space.
func (d *Decoder) LogLikelihood(seq []string) (float64, error) {
	if d.m == nil {
		return 0, errNotInitialized
	}
	p, err := d.m.LogForward(seq)
	if err != nil {
		return 0, fmt.Errorf("hmm: %w", err)
	}
	return p, nil
}

// Decode returns the most probable hidden-state sequence.
func (d *Decoder) Decode(seq []string) ([]string, error) {
	res, err := d.DecodePath(seq, false)
	if err != nil {
		return nil, err
	}
	return res.States, nil
}

// DecodePath returns the most probable hidden-state sequence with its
// probability. With logSpace set the probability is a natural log.
func (d *Decoder) DecodePath(seq []string, logSpace bool) (*Decoding, error) {
	if d.m == nil {
		return nil, errNotInitialized
	}
	var path markov.Path
	var err error
	if logSpace {
		path, err = d.m.LogViterbi(seq)
	} else {
		path, err = d.m.ViterbiPath(seq)
	}
	if err != nil {
		return nil, fmt.Errorf("hmm: %w", err)
	}
	return &Decoding{
		Observations: seq,
		States:       path.States,
		Probability:  path.Probability,
		Log:          logSpace,
	}, nil
}
