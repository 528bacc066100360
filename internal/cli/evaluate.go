package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/happyhackingspace/hmm"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var dataFolder string
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compare decoded paths and likelihoods with annotated sequences",
		Example: `  hmm evaluate --data-folder data
  hmm evaluate --data-folder data --model other.yaml -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Evaluating", "data-folder", dataFolder)
			start := time.Now()
			result, err := hmm.Evaluate(dataFolder, &hmm.EvalConfig{
				ModelPath: c.modelPath,
				Tolerance: tolerance,
				Verbose:   c.verbose,
			})
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			out := cmd.OutOrStdout()
			if result.StateTotal > 0 {
				fmt.Fprintf(out, "State accuracy: %.1f%% (%d/%d states)\n",
					result.StateAccuracy*100, result.StateCorrect, result.StateTotal)
				fmt.Fprintf(out, "Sequence accuracy: %.1f%% (%d/%d sequences)\n",
					result.SequenceAccuracy*100, result.SequenceCorrect, result.SequenceTotal)
			}
			if result.LikelihoodChecked > 0 {
				fmt.Fprintf(out, "Likelihood matches: %d/%d\n",
					result.LikelihoodChecked-len(result.LikelihoodMismatch), result.LikelihoodChecked)
				if len(result.LikelihoodMismatch) > 0 {
					fmt.Fprintf(out, "Mismatched: %s\n", strings.Join(result.LikelihoodMismatch, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFolder, "data-folder", c.config.DataFolder, "Path to data folder (env HMM_DATA_FOLDER)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-12, "Relative tolerance for expected likelihoods")
	return cmd
}
