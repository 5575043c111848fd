package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/placement"
)

var moveWorkspaceCmd = &cobra.Command{
	Use:     "move_workspace DIRECTION",
	Aliases: []string{"move-workspace"},
	Short:   "Move the focused workspace to the neighbouring output",
	Long: `Move the focused workspace to the output on its left, right, top or bottom.

The workspace keeps its local number when that number is free on the
target output; otherwise it takes the lowest free number. It is renamed
into the target's band before it is moved. Past the last output the
move wraps around unless --no-wrap is set.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: placement.DirectionNames(),
	RunE:      runMoveWorkspace,
}

func init() {
	rootCmd.AddCommand(moveWorkspaceCmd)
}

func runMoveWorkspace(cmd *cobra.Command, args []string) error {
	d, err := placement.ParseDirection(args[0])
	if err != nil {
		return err
	}
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	plan, err := e.MoveWorkspace(d)
	if err != nil {
		return err
	}
	if plan.Empty() {
		loggerFromContext(cmd.Context()).Info("no other output, nothing to do", "direction", d)
	}
	return execute(cmd, e, plan)
}
