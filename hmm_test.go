package hmm

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhackingspace/hmm/markov"
)

const weatherModelYAML = `observations: [sun, rain]
states: [hot, cold]
prior: [0.5, 0.5]
transition:
  - [0.7, 0.3]
  - [0.4, 0.6]
emission:
  - [0.8, 0.2]
  - [0.4, 0.6]
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func loadWeather(t *testing.T) *Decoder {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.yaml")
	writeFile(t, path, weatherModelYAML)
	d, err := Load(path)
	require.NoError(t, err)
	return d
}

func TestLikelihoodAndDecode(t *testing.T) {
	d := loadWeather(t)
	seq := []string{"sun", "sun", "rain"}

	p, err := d.Likelihood(seq)
	require.NoError(t, err)
	assert.InDelta(t, 0.1344, p, 1e-12)

	lp, err := d.LogLikelihood(seq)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.1344), lp, 1e-12)

	states, err := d.Decode(seq)
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "hot", "cold"}, states)

	res, err := d.DecodePath(seq, true)
	require.NoError(t, err)
	assert.True(t, res.Log)
	assert.Equal(t, seq, res.Observations)
	assert.InDelta(t, math.Log(0.04032), res.Probability, 1e-12)
}

func TestDecodingJSONImpossiblePath(t *testing.T) {
	m, err := markov.New([]string{"a", "b"}, []string{"x", "y"},
		[]float64{0.5, 0.5},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
		[][]float64{{1, 0}, {1, 0}})
	require.NoError(t, err)
	d := FromModel(m)

	res, err := d.DecodePath([]string{"a", "b"}, true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Probability, -1))

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"observations":["a","b"],"states":["x","x"],"probability":null,"log":true}`, string(data))

	res, err = d.DecodePath([]string{"a"}, false)
	require.NoError(t, err)
	data, err = json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"observations":["a"],"states":["x"],"probability":0.5}`, string(data))
}

func TestErrorsKeepType(t *testing.T) {
	d := loadWeather(t)

	_, err := d.Likelihood([]string{"sun", "hail"})
	var unknown *markov.UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hail", unknown.Symbol)
	assert.Contains(t, err.Error(), "hmm: ")

	_, err = d.Decode(nil)
	assert.ErrorIs(t, err, markov.ErrEmptySequence)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	writeFile(t, path, `{"observations":["a","b"],"states":["x"],"prior":[1],"transition":[[1]],"emission":[[0.5,0.5],[0.5,0.5]]}`)
	_, err := Load(path)
	var dimErr *markov.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, "emission rows vs hidden states", dimErr.Context)
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load("nonexistent.json")
	if err == nil {
		t.Error("expected error for nonexistent model")
	}
}

func TestDecoderNotInitialized(t *testing.T) {
	d := &Decoder{}
	_, err := d.Decode([]string{"sun"})
	if err == nil {
		t.Error("expected error for uninitialized decoder")
	}
	_, err = d.Likelihood([]string{"sun"})
	assert.Error(t, err)
	assert.Error(t, d.Save(filepath.Join(t.TempDir(), "model.json")))
}

func TestSaveLoad(t *testing.T) {
	d := loadWeather(t)
	path := filepath.Join(t.TempDir(), "copy.json")
	require.NoError(t, d.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.Model().File(), loaded.Model().File())
}

func TestNewFindsModel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/x\n")
	writeFile(t, filepath.Join(root, "model.yaml"), weatherModelYAML)
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	t.Chdir(sub)

	d, err := New()
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "cold"}, d.Model().States())
}

func TestNewNoModel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/x\n")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Chdir(root)

	_, err := New()
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model.yaml"), weatherModelYAML)
	writeFile(t, filepath.Join(dir, "sequences", "weather.yaml"), `- name: correct
  observations: [sun, sun, rain]
  states: [hot, hot, cold]
  likelihood: 0.1344
- name: wrong
  observations: [sun, rain]
  states: [cold, cold]
- name: off
  observations: [rain]
  likelihood: 0.5
`)

	result, err := Evaluate(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SequenceTotal)
	assert.Equal(t, 1, result.SequenceCorrect)
	assert.Equal(t, 5, result.StateTotal)
	assert.Equal(t, 0.5, result.SequenceAccuracy)
	assert.Equal(t, 2, result.LikelihoodChecked)
	assert.Equal(t, []string{"off"}, result.LikelihoodMismatch)
}

func TestEvaluateUnknownSymbol(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model.yaml"), weatherModelYAML)
	writeFile(t, filepath.Join(dir, "sequences", "bad.yaml"), `- name: hail
  observations: [sun, hail]
  states: [hot, hot]
`)
	_, err := Evaluate(dir, nil)
	assert.ErrorIs(t, err, markov.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "hail")
}

func TestEvaluateModelOverride(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(t.TempDir(), "other.yaml")
	writeFile(t, modelPath, weatherModelYAML)
	writeFile(t, filepath.Join(dir, "sequences", "s.yaml"), `- observations: [sun]
  states: [hot]
`)
	result, err := Evaluate(dir, &EvalConfig{ModelPath: modelPath})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.SequenceAccuracy)
}
