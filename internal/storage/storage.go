package storage

import (
	"crypto/md5"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/happyhackingspace/hmm/markov"
)

// ModelNames are the file names searched for a model, in order.
var ModelNames = []string{"model.yaml", "model.yml", "model.json"}

// SequencesDir is the sub-folder holding annotation files.
const SequencesDir = "sequences"

// ErrNoModel is returned when a folder holds none of ModelNames.
var ErrNoModel = errors.New("no model file found")

// Storage wraps a data folder:
//
//	data/
//	  model.yaml
//	  sequences/
//	    weather.yaml
type Storage struct {
	Folder string
}

// NewStorage creates a Storage for the given data folder.
func NewStorage(folder string) *Storage {
	return &Storage{Folder: folder}
}

// ModelPath returns the path of the folder's model file.
func (s *Storage) ModelPath() (string, error) {
	for _, name := range ModelNames {
		path := filepath.Join(s.Folder, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoModel, s.Folder)
}

// LoadModel reads and validates the folder's model file.
func (s *Storage) LoadModel() (*markov.Model, error) {
	path, err := s.ModelPath()
	if err != nil {
		return nil, err
	}
	m, err := markov.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	slog.Debug("Model loaded", "path", path, "states", m.NumStates(), "observations", m.NumObservations())
	return m, nil
}

// SequenceFiles lists the annotation files, sorted by name.
func (s *Storage) SequenceFiles() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Folder, SequencesDir))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadSequences parses one annotation file. Each file holds a list of annotations.
func (s *Storage) ReadSequences(name string) ([]Annotation, error) {
	data, err := os.ReadFile(filepath.Join(s.Folder, SequencesDir, name))
	if err != nil {
		return nil, err
	}
	var anns []Annotation
	if err := yaml.Unmarshal(data, &anns); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	for i := range anns {
		anns[i].File = name
		anns[i].Index = i
		if anns[i].Name == "" {
			anns[i].Name = fmt.Sprintf("%s#%d", strings.TrimSuffix(name, filepath.Ext(name)), i)
		}
	}
	return anns, nil
}

// IterAnnotations returns the annotations of every sequence file, in file order.
func (s *Storage) IterAnnotations(opts IterOptions) ([]Annotation, error) {
	files, err := s.SequenceFiles()
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}

	seen := make(map[string]bool)
	var annotations []Annotation

	for _, name := range files {
		anns, err := s.ReadSequences(name)
		if err != nil {
			return nil, err
		}
		slog.Debug("Sequences loaded", "file", name, "count", len(anns))

		for _, ann := range anns {
			if opts.DropEmpty && len(ann.Observations) == 0 {
				if opts.Verbose {
					slog.Warn("Skipping empty sequence", "name", ann.Name)
				}
				continue
			}
			if opts.DropUnlabeled && !ann.Labeled() {
				continue
			}

			// Deduplication by content hash
			if opts.DropDuplicates {
				key := strings.Join(ann.Observations, "\x00") + "\x01" + strings.Join(ann.States, "\x00")
				hash := fmt.Sprintf("%x", md5.Sum([]byte(key)))
				if seen[hash] {
					continue
				}
				seen[hash] = true
			}
			annotations = append(annotations, ann)
		}
	}

	return annotations, nil
}

// IterOptions controls annotation iteration behavior.
type IterOptions struct {
	DropDuplicates bool
	DropEmpty      bool
	DropUnlabeled  bool
	Verbose        bool
}

// DefaultIterOptions returns the default options for iterating annotations.
func DefaultIterOptions() IterOptions {
	return IterOptions{
		DropDuplicates: true,
		DropEmpty:      true,
	}
}
