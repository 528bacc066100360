package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newForwardCommand() *cobra.Command {
	var logSpace bool

	cmd := &cobra.Command{
		Use:   "forward [symbols...]",
		Short: "Print the likelihood of observation sequences",
		Example: `  # Score one sequence
  hmm forward --model weather.yaml sun sun rain

  # Score one sequence per stdin line
  cat sequences.txt | hmm forward --model weather.yaml

  # Log-likelihood, for long sequences
  hmm forward --model weather.yaml --log sun sun rain`,
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
			out := cmd.OutOrStdout()
			for _, seq := range seqs {
				var p float64
				if logSpace {
					p, err = d.LogLikelihood(seq)
				} else {
					p, err = d.Likelihood(seq)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strconv.FormatFloat(p, 'g', -1, 64))
			}
			slog.Debug("Forward completed", "sequences", len(seqs), "duration", time.Since(start))
			return nil
		},
	}

	cmd.Flags().BoolVar(&logSpace, "log", false, "Print natural-log likelihoods computed in log space")
	return cmd
}
