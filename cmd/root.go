package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/config"
	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/output"
	"github.com/mj1618/workspace-output/internal/version"

	// Registers the i3/sway session backend.
	_ "github.com/mj1618/workspace-output/internal/platform/i3wm"
)

var rootCmd = &cobra.Command{
	Use:   "workspace-output",
	Short: "Per-output workspace numbering for i3 and sway",
	Long: `Give every output its own band of workspace numbers.

Workspaces are named "<global>: <local>", where global is the output's
offset plus the local number. Offsets are 100 times the output's rank
among active outputs sorted by name, so the same local number can exist
once per output.`,
	SilenceUsage: true,
}

// settings is the effective configuration after flags are applied.
var settings = config.Default()

// configPath is the config file that was read, empty when none was found.
var configPath string

// Execute runs the root command and exits with a code derived from the error.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
	); err != nil {
		os.Exit(wserrors.ExitCode(err))
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}

func init() {
	rootCmd.Version = versionString()
	flags := rootCmd.PersistentFlags()
	flags.BoolP("dry-run", "d", false, "Print the window-manager commands instead of running them")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("format", "yaml", "Output format for listings: yaml, json")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/workspace-output/config.yaml)")
	flags.String("socket", "", "IPC socket path (default $SWAYSOCK, then $I3SOCK)")
	flags.Bool("no-wrap", false, "Fail at the edge of the layout instead of wrapping around")
	rootCmd.PersistentPreRunE = setup
}

// setup loads the config, applies flag overrides and attaches a logger to
// the command context.
func setup(cmd *cobra.Command, args []string) error {
	flags := rootCmd.PersistentFlags()

	path, _ := flags.GetString("config")
	cfg, found, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if socket, _ := flags.GetString("socket"); socket != "" {
		cfg.Socket = socket
	}
	if noWrap, _ := flags.GetBool("no-wrap"); noWrap {
		cfg.Wrap = false
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	format, _ := flags.GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f

	settings = cfg
	configPath = found

	logger := newLogger(cmd.ErrOrStderr(), level)
	if found != "" {
		logger.Debug("loaded config", "path", found)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, logger))
	return nil
}

