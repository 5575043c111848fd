package cmd

import (
	"github.com/spf13/cobra"
)

var moveContainerCmd = &cobra.Command{
	Use:     "move_container N",
	Aliases: []string{"move-container"},
	Short:   "Move the focused container to local workspace N on the focused output",
	Args:    cobra.ExactArgs(1),
	RunE:    runMoveContainer,
}

func init() {
	rootCmd.AddCommand(moveContainerCmd)
}

func runMoveContainer(cmd *cobra.Command, args []string) error {
	n, err := parseLocal(args[0])
	if err != nil {
		return err
	}
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	plan, err := e.MoveContainer(n)
	if err != nil {
		return err
	}
	return execute(cmd, e, plan)
}
