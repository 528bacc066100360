package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [modelfile]",
		Short: "Check a model file's shapes and probability sums",
		Args:  cobra.MaximumNArgs(1),
		Example: `  hmm validate weather.yaml
  HMM_MODEL=weather.json hmm validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.modelPath = args[0]
			}
			d, err := c.loadDecoder()
			if err != nil {
				return err
			}
			m := d.Model()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "states (%d): %s\n", m.NumStates(), strings.Join(m.States(), " "))
			fmt.Fprintf(out, "observations (%d): %s\n", m.NumObservations(), strings.Join(m.Observations(), " "))
			return nil
		},
	}
}
