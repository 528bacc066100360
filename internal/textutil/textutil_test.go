package textutil

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"sun sun rain", []string{"sun", "sun", "rain"}},
		{"sun,sun, rain", []string{"sun", "sun", "rain"}},
		{"", nil},
		{"  spaces  ", []string{"spaces"}},
		{"a\tb\nc", []string{"a", "b", "c"}},
		{"café résumé", []string{"café", "résumé"}},
		{"x-1 y_2", []string{"x-1", "y_2"}},
		{",,", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSequences(t *testing.T) {
	input := `# weather
sun sun rain

  rain,sun
# done
`
	got, err := Sequences(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"sun", "sun", "rain"}, {"rain", "sun"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sequences = %v, want %v", got, want)
	}
}

func TestSequencesEmpty(t *testing.T) {
	got, err := Sequences(strings.NewReader("\n# nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Sequences = %v, want none", got)
	}
}
