package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/output"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces with their output and local number",
	RunE:  runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.Flags().String("output", "", "Only list workspaces on this output")
	workspacesCmd.Flags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("output")
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	infos, err := e.Workspaces(name)
	if err != nil {
		return err
	}
	output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
	return output.Fprint(cmd.OutOrStdout(), infos)
}
