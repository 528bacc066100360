// Package textutil reads observation sequences from free text.
package textutil

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var tokenizeRe = regexp.MustCompile(`[^\s,]+`)

// Tokenize splits text into symbols separated by whitespace or commas.
func Tokenize(text string) []string {
	return tokenizeRe.FindAllString(text, -1)
}

// Sequences reads one sequence per line. Blank lines and lines starting
// with '#' are skipped.
func Sequences(r io.Reader) ([][]string, error) {
	var seqs [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seqs = append(seqs, Tokenize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seqs, nil
}
