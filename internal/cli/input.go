package cli

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/happyhackingspace/hmm"
	"github.com/happyhackingspace/hmm/internal/textutil"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no observation sequences on stdin")

// readSequences returns the sequence given as arguments, or one sequence per
// stdin line. It returns nil, nil when stdin is an interactive terminal.
func readSequences(cmd *cobra.Command, args []string) ([][]string, error) {
	if len(args) > 0 {
		return [][]string{textutil.Tokenize(strings.Join(args, " "))}, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return nil, nil
	}
	slog.Debug("Reading from stdin")
	seqs, err := textutil.Sequences(in)
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, errNoInput
	}
	return seqs, nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (c *CLI) loadDecoder() (*hmm.Decoder, error) {
	start := time.Now()
	var d *hmm.Decoder
	var err error
	if c.modelPath != "" {
		slog.Debug("Loading model", "path", c.modelPath)
		d, err = hmm.Load(c.modelPath)
	} else {
		d, err = hmm.New()
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Model loaded", "states", d.Model().NumStates(), "duration", time.Since(start))
	return d, nil
}
