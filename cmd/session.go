package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/placement"
	"github.com/mj1618/workspace-output/internal/platform"
)

// engineOptions builds placement options from the effective settings.
func engineOptions(cmd *cobra.Command) placement.Options {
	return placement.Options{
		Stride: settings.Stride,
		NoWrap: !settings.Wrap,
		Logger: loggerFromContext(cmd.Context()),
	}
}

func connect() (platform.Session, error) {
	return platform.Connect(platform.ConnectOptions{Socket: settings.Socket})
}

// newEngine connects to the window manager and returns a fresh engine.
func newEngine(cmd *cobra.Command) (*placement.Engine, error) {
	session, err := connect()
	if err != nil {
		return nil, err
	}
	return placement.New(session, engineOptions(cmd)), nil
}

// execute applies plan, or prints its commands when --dry-run is set.
func execute(cmd *cobra.Command, e *placement.Engine, plan placement.Plan) error {
	return e.Execute(plan, settings.DryRun, cmd.OutOrStdout())
}

// parseLocal parses a local workspace number argument.
func parseLocal(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "workspace number must be an integer, got %q", arg)
	}
	if n < 0 {
		return 0, wserrors.New(wserrors.ErrCodeInvalidInput, "workspace number must not be negative, got %d", n)
	}
	return n, nil
}
