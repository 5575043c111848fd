package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/output"
	"github.com/mj1618/workspace-output/internal/placement"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the commands an operation would run, with reasons",
	Long: `Build the plan for an operation and print it as YAML or JSON without
running it. Nothing is sent to the window manager besides queries.

Examples:
  workspace-output plan number 3
  workspace-output plan move_workspace right --format json`,
}

var planNumberCmd = &cobra.Command{
	Use:  "number N",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseLocal(args[0])
		if err != nil {
			return err
		}
		return printPlan(cmd, func(e *placement.Engine) (placement.Plan, error) {
			return e.Switch(n)
		})
	},
}

var planMoveContainerCmd = &cobra.Command{
	Use:     "move_container N",
	Aliases: []string{"move-container"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseLocal(args[0])
		if err != nil {
			return err
		}
		return printPlan(cmd, func(e *placement.Engine) (placement.Plan, error) {
			return e.MoveContainer(n)
		})
	},
}

var planMoveWorkspaceCmd = &cobra.Command{
	Use:       "move_workspace DIRECTION",
	Aliases:   []string{"move-workspace"},
	Args:      cobra.ExactArgs(1),
	ValidArgs: placement.DirectionNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := placement.ParseDirection(args[0])
		if err != nil {
			return err
		}
		return printPlan(cmd, func(e *placement.Engine) (placement.Plan, error) {
			return e.MoveWorkspace(d)
		})
	},
}

func init() {
	planCmd.AddCommand(planNumberCmd, planMoveContainerCmd, planMoveWorkspaceCmd)
	rootCmd.AddCommand(planCmd)
}

func printPlan(cmd *cobra.Command, build func(*placement.Engine) (placement.Plan, error)) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	plan, err := build(e)
	if err != nil {
		return err
	}
	if plan.Steps == nil {
		plan.Steps = []placement.Step{}
	}
	return output.Fprint(cmd.OutOrStdout(), plan)
}
