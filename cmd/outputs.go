package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/output"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List active outputs with their workspace number offsets",
	RunE:  runOutputs,
}

func init() {
	rootCmd.AddCommand(outputsCmd)
	outputsCmd.Flags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
}

func runOutputs(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	infos, err := e.Layout()
	if err != nil {
		return err
	}
	output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
	return output.Fprint(cmd.OutOrStdout(), infos)
}
