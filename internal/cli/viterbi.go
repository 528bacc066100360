package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/happyhackingspace/hmm"
	"github.com/spf13/cobra"
)

func (c *CLI) newViterbiCommand() *cobra.Command {
	var logSpace bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "viterbi [symbols...]",
		Short: "Print the most probable hidden-state path of observation sequences",
		Example: `  # Decode one sequence
  hmm viterbi --model weather.yaml sun sun rain

  # Decode one sequence per stdin line, with path probabilities
  cat sequences.txt | hmm viterbi --model weather.yaml --json

  # Decode in log space
  hmm viterbi --model weather.yaml --log --json sun sun rain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := readSequences(cmd, args)
			if err != nil {
				return err
			}
			if seqs == nil {
				return cmd.Help()
			}

			d, err := c.loadDecoder()
			if err != nil {
				return err
			}

			start := time.Now()
			results := make([]*hmm.Decoding, 0, len(seqs))
			for _, seq := range seqs {
				res, err := d.DecodePath(seq, logSpace)
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			slog.Debug("Viterbi completed", "sequences", len(seqs), "duration", time.Since(start))

			out := cmd.OutOrStdout()
			if asJSON {
				output, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(output))
				return nil
			}
			for _, res := range results {
				fmt.Fprintln(out, strings.Join(res.States, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&logSpace, "log", false, "Decode in log space")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print observations, states and path probability as JSON")
	return cmd
}
