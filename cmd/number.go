package cmd

import (
	"github.com/spf13/cobra"
)

var numberCmd = &cobra.Command{
	Use:     "number N",
	Aliases: []string{"switch"},
	Short:   "Switch to local workspace N on the focused output",
	Long: `Switch to workspace N of the focused output.

The global workspace number is the output's offset plus N, so
"number 3" on the second output (offset 100) runs:

  workspace 103: 3`,
	Args: cobra.ExactArgs(1),
	RunE: runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	n, err := parseLocal(args[0])
	if err != nil {
		return err
	}
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	plan, err := e.Switch(n)
	if err != nil {
		return err
	}
	return execute(cmd, e, plan)
}
