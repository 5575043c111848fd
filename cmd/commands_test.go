package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
	"github.com/mj1618/workspace-output/internal/output"
	"github.com/mj1618/workspace-output/internal/platform"
)

type fakeSession struct {
	outputs    []model.Output
	workspaces []model.Workspace
	commands   []string
	reject     map[string]string
}

func (f *fakeSession) Outputs() ([]model.Output, error) { return f.outputs, nil }

func (f *fakeSession) Workspaces() ([]model.Workspace, error) { return f.workspaces, nil }

func (f *fakeSession) RunCommand(command string) error {
	if reason, ok := f.reject[command]; ok {
		return &wserrors.CommandError{Command: command, Reason: reason}
	}
	f.commands = append(f.commands, command)
	return nil
}

// laptopAndMonitor has eDP-1 left of HDMI-1, with the focus on eDP-1.
// HDMI-1 sorts first, so its offset is 0 and eDP-1's is 100.
func laptopAndMonitor() *fakeSession {
	return &fakeSession{
		outputs: []model.Output{
			{Name: "eDP-1", Active: true, Rect: model.Rect{X: 0, Width: 1920, Height: 1080}},
			{Name: "HDMI-1", Active: true, Rect: model.Rect{X: 1920, Width: 1920, Height: 1080}},
		},
		workspaces: []model.Workspace{
			{Name: "1: 1", Output: "HDMI-1"},
			{Name: "5: 5", Output: "HDMI-1"},
			{Name: "105: 5", Output: "eDP-1", Focused: true},
		},
	}
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the command tree against session and returns stdout.
func run(t *testing.T, session platform.Session, args ...string) (string, error) {
	t.Helper()

	// Cleanups run last-in first-out: reload after the env is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	orig := platform.ConnectFunc
	platform.ConnectFunc = func(platform.ConnectOptions) (platform.Session, error) {
		return session, nil
	}
	t.Cleanup(func() {
		platform.ConnectFunc = orig
		output.OutputFormat = output.FormatYAML
		output.PrettyOutput = false
	})

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestNumber(t *testing.T) {
	f := laptopAndMonitor()
	out, err := run(t, f, "number", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
	if len(f.commands) != 1 || f.commands[0] != "workspace 103: 3" {
		t.Errorf("commands = %v", f.commands)
	}
}

func TestNumber_DryRun(t *testing.T) {
	f := laptopAndMonitor()
	out, err := run(t, f, "--dry-run", "number", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "workspace 103: 3\n" {
		t.Errorf("dry run output = %q", out)
	}
	if len(f.commands) != 0 {
		t.Errorf("dry run executed %v", f.commands)
	}
}

func TestNumber_InvalidArgument(t *testing.T) {
	for _, arg := range []string{"three", "-1"} {
		_, err := run(t, laptopAndMonitor(), "number", "--", arg)
		if !wserrors.Is(err, wserrors.ErrCodeInvalidInput) {
			t.Errorf("number %q: expected INVALID_INPUT, got %v", arg, err)
		}
	}
}

func TestMoveContainer(t *testing.T) {
	f := laptopAndMonitor()
	if _, err := run(t, f, "move_container", "7"); err != nil {
		t.Fatal(err)
	}
	if len(f.commands) != 1 || f.commands[0] != `move container workspace "107: 7"` {
		t.Errorf("commands = %v", f.commands)
	}
}

func TestMoveWorkspace_DryRunRenumbers(t *testing.T) {
	f := laptopAndMonitor()
	out, err := run(t, f, "-d", "move_workspace", "right")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{`rename workspace to "2: 2"`, "move workspace to output HDMI-1"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("dry run lines = %q, want %q", lines, want)
	}
	if len(f.commands) != 0 {
		t.Errorf("dry run executed %v", f.commands)
	}
}

func TestMoveWorkspace_NoWrap(t *testing.T) {
	_, err := run(t, laptopAndMonitor(), "--no-wrap", "move_workspace", "left")
	if !wserrors.Is(err, wserrors.ErrCodeNoNeighborOutput) {
		t.Errorf("expected NO_NEIGHBOR_OUTPUT, got %v", err)
	}
	if wserrors.ExitCode(err) != 3 {
		t.Errorf("exit code = %d, want 3", wserrors.ExitCode(err))
	}
}

func TestMoveWorkspace_BadDirection(t *testing.T) {
	_, err := run(t, laptopAndMonitor(), "move_workspace", "sideways")
	if !wserrors.Is(err, wserrors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestCommandRejected_ExitCode(t *testing.T) {
	f := laptopAndMonitor()
	f.reject = map[string]string{"workspace 103: 3": "denied"}
	_, err := run(t, f, "number", "3")
	if wserrors.ExitCode(err) != 4 {
		t.Errorf("exit code = %d, want 4 (err %v)", wserrors.ExitCode(err), err)
	}
}

func TestOutputs_JSON(t *testing.T) {
	out, err := run(t, laptopAndMonitor(), "--format", "json", "outputs")
	if err != nil {
		t.Fatal(err)
	}
	var got []struct {
		Name   string `json:"name"`
		Rank   int    `json:"rank"`
		Offset int    `json:"offset"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(got) != 2 || got[0].Name != "HDMI-1" || got[1].Name != "eDP-1" || got[1].Offset != 100 {
		t.Errorf("outputs = %+v", got)
	}
}

func TestWorkspaces_Filter(t *testing.T) {
	out, err := run(t, laptopAndMonitor(), "workspaces", "--output", "HDMI-1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "eDP-1") {
		t.Errorf("filter leaked other outputs:\n%s", out)
	}
	if !strings.Contains(out, "5: 5") {
		t.Errorf("missing HDMI-1 workspace:\n%s", out)
	}
}

func TestPlan_DoesNotApply(t *testing.T) {
	f := laptopAndMonitor()
	out, err := run(t, f, "plan", "move_workspace", "right")
	if err != nil {
		t.Fatal(err)
	}
	if len(f.commands) != 0 {
		t.Errorf("plan executed %v", f.commands)
	}
	if !strings.Contains(out, "action: move_workspace") || !strings.Contains(out, "reason:") {
		t.Errorf("plan output missing fields:\n%s", out)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, laptopAndMonitor(), "--format", "xml", "outputs")
	if !wserrors.Is(err, wserrors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestConfigFile_DryRunAndStride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dry_run: true\nstride: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := laptopAndMonitor()
	out, err := run(t, f, "--config", path, "number", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "workspace 1003: 3\n" {
		t.Errorf("output = %q", out)
	}
	if len(f.commands) != 0 {
		t.Errorf("dry_run from config ignored, executed %v", f.commands)
	}
}

func TestConfigShow_FlagOverrides(t *testing.T) {
	out, err := run(t, laptopAndMonitor(), "--verbose", "--no-wrap", "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "log_level: debug") || !strings.Contains(out, "wrap: false") {
		t.Errorf("config show = \n%s", out)
	}
}

func TestConfigPath_Default(t *testing.T) {
	out, err := run(t, laptopAndMonitor(), "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join("workspace-output", "config.yaml")) {
		t.Errorf("config path = %q", out)
	}
}
