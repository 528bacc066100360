package markov

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a model.
type File struct {
	Observations []string    `json:"observations" yaml:"observations"`
	States       []string    `json:"states" yaml:"states"`
	Prior        []float64   `json:"prior" yaml:"prior"`
	Transition   [][]float64 `json:"transition" yaml:"transition"`
	Emission     [][]float64 `json:"emission" yaml:"emission"`
}

// File returns the serializable form of the model.
func (m *Model) File() File {
	return File{
		Observations: m.Observations(),
		States:       m.States(),
		Prior:        m.Prior(),
		Transition:   m.Transition(),
		Emission:     m.Emission(),
	}
}

// Model validates the file contents and builds a model from them.
func (f File) Model() (*Model, error) {
	return New(f.Observations, f.States, f.Prior, f.Transition, f.Emission)
}

// SaveModel serializes the model to path, as YAML for .yaml/.yml and JSON otherwise.
func SaveModel(model *Model, path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = MarshalModelYAML(model)
	} else {
		data, err = json.MarshalIndent(model.File(), "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadModel deserializes and validates a model from path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return UnmarshalModelYAML(data)
	}
	return UnmarshalModel(data)
}

// MarshalModel serializes the model to JSON bytes.
func MarshalModel(model *Model) ([]byte, error) {
	return json.Marshal(model.File())
}

// UnmarshalModel deserializes a model from JSON bytes.
func UnmarshalModel(data []byte) (*Model, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Model()
}

// MarshalModelYAML serializes the model to YAML bytes.
func MarshalModelYAML(model *Model) ([]byte, error) {
	return yaml.Marshal(model.File())
}

// UnmarshalModelYAML deserializes a model from YAML bytes.
func UnmarshalModelYAML(data []byte) (*Model, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Model()
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
