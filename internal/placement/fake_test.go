package placement

import (
	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
)

// fakeSession is an in-memory window manager. Commands are recorded, not
// interpreted.
type fakeSession struct {
	outputs    []model.Output
	workspaces []model.Workspace
	commands   []string
	reject     map[string]string // command -> reason

	outputCalls int
}

func (f *fakeSession) Outputs() ([]model.Output, error) {
	f.outputCalls++
	return append([]model.Output(nil), f.outputs...), nil
}

func (f *fakeSession) Workspaces() ([]model.Workspace, error) {
	return append([]model.Workspace(nil), f.workspaces...), nil
}

func (f *fakeSession) RunCommand(command string) error {
	if reason, ok := f.reject[command]; ok {
		return &wserrors.CommandError{Command: command, Reason: reason}
	}
	f.commands = append(f.commands, command)
	return nil
}

func output(name string, x, y int) model.Output {
	return model.Output{Name: name, Active: true, Rect: model.Rect{X: x, Y: y, Width: 1920, Height: 1080}}
}

func ws(name, output string) model.Workspace {
	return model.Workspace{Name: name, Output: output}
}

func focusedWS(name, output string) model.Workspace {
	return model.Workspace{Name: name, Output: output, Focused: true}
}

// laptopAndMonitor is eDP-1 on the left and HDMI-1 on the right.
func laptopAndMonitor() *fakeSession {
	return &fakeSession{
		outputs: []model.Output{
			output("eDP-1", 0, 0),
			output("HDMI-1", 1920, 0),
		},
	}
}
