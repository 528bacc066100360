package hmm

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/happyhackingspace/hmm/internal/storage"
)

// EvalConfig holds configuration for evaluation.
type EvalConfig struct {
	// ModelPath overrides the data folder's own model file.
	ModelPath string
	// Tolerance is the relative tolerance for expected likelihoods.
	Tolerance float64
	Verbose   bool
}

// EvalResult holds evaluation results over annotated sequences.
type EvalResult struct {
	StateAccuracy      float64
	SequenceAccuracy   float64
	StateCorrect       int
	StateTotal         int
	SequenceCorrect    int
	SequenceTotal      int
	LikelihoodChecked  int
	LikelihoodMismatch []string // names of annotations whose likelihood differs
}

// Evaluate decodes every annotated sequence in dataDir and compares the
// result with the expected state paths and likelihoods.
func Evaluate(dataDir string, config *EvalConfig) (*EvalResult, error) {
	tolerance := 1e-12
	verbose := false
	modelPath := ""
	if config != nil {
		if config.Tolerance > 0 {
			tolerance = config.Tolerance
		}
		verbose = config.Verbose
		modelPath = config.ModelPath
	}

	store := storage.NewStorage(dataDir)
	var d *Decoder
	if modelPath != "" {
		var err error
		if d, err = Load(modelPath); err != nil {
			return nil, err
		}
	} else {
		m, err := store.LoadModel()
		if err != nil {
			return nil, fmt.Errorf("hmm: %w", err)
		}
		d = FromModel(m)
	}

	opts := storage.DefaultIterOptions()
	opts.Verbose = verbose
	annotations, err := store.IterAnnotations(opts)
	if err != nil {
		return nil, fmt.Errorf("hmm: %w", err)
	}
	if len(annotations) == 0 {
		return nil, fmt.Errorf("hmm: no annotations found in %s", dataDir)
	}

	result := &EvalResult{}
	for _, ann := range annotations {
		if ann.Labeled() {
			pred, err := d.Decode(ann.Observations)
			if err != nil {
				return nil, fmt.Errorf("%w (sequence %s)", err, ann.Name)
			}
			allCorrect := len(pred) == len(ann.States)
			for j := range ann.States {
				if j < len(pred) && pred[j] == ann.States[j] {
					result.StateCorrect++
				} else {
					allCorrect = false
				}
				result.StateTotal++
			}
			if allCorrect {
				result.SequenceCorrect++
			} else if verbose {
				slog.Info("Path mismatch", "sequence", ann.Name, "want", ann.States, "got", pred)
			}
			result.SequenceTotal++
		}

		if ann.Likelihood != nil {
			p, err := d.Likelihood(ann.Observations)
			if err != nil {
				return nil, fmt.Errorf("%w (sequence %s)", err, ann.Name)
			}
			want := *ann.Likelihood
			if math.Abs(p-want) > tolerance*math.Abs(want) {
				result.LikelihoodMismatch = append(result.LikelihoodMismatch, ann.Name)
				if verbose {
					slog.Info("Likelihood mismatch", "sequence", ann.Name, "want", want, "got", p)
				}
			}
			result.LikelihoodChecked++
		}
	}

	if result.StateTotal > 0 {
		result.StateAccuracy = float64(result.StateCorrect) / float64(result.StateTotal)
	}
	if result.SequenceTotal > 0 {
		result.SequenceAccuracy = float64(result.SequenceCorrect) / float64(result.SequenceTotal)
	}
	return result, nil
}
