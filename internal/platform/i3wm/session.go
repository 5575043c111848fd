package i3wm

import (
	"os"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
	"github.com/mj1618/workspace-output/internal/platform"
	"go.i3wm.org/i3/v4"
)

// defaultSocketPathHook is i3's own lookup, kept as the last fallback.
var defaultSocketPathHook = i3.SocketPathHook

// Session implements platform.Session over the i3 IPC socket.
// The underlying client keeps a single connection per process.
type Session struct{}

var _ platform.Session = (*Session)(nil)

// Connect points the IPC client at the right socket and probes it.
func Connect(opts platform.ConnectOptions) (*Session, error) {
	socket := resolveSocket(opts.Socket, os.Getenv)
	i3.SocketPathHook = func() (string, error) {
		if socket != "" {
			return socket, nil
		}
		return defaultSocketPathHook()
	}

	if _, err := i3.GetVersion(); err != nil {
		return nil, wserrors.Wrap(wserrors.ErrCodeConnection, err, "cannot reach window manager")
	}
	return &Session{}, nil
}

// resolveSocket picks the socket path: explicit, then $SWAYSOCK, then $I3SOCK.
// An empty result defers to i3's own lookup.
func resolveSocket(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if sock := getenv("SWAYSOCK"); sock != "" {
		return sock
	}
	return getenv("I3SOCK")
}

func (s *Session) Outputs() ([]model.Output, error) {
	outputs, err := i3.GetOutputs()
	if err != nil {
		return nil, wserrors.Wrap(wserrors.ErrCodeConnection, err, "get outputs")
	}
	return convertOutputs(outputs), nil
}

func (s *Session) Workspaces() ([]model.Workspace, error) {
	workspaces, err := i3.GetWorkspaces()
	if err != nil {
		return nil, wserrors.Wrap(wserrors.ErrCodeConnection, err, "get workspaces")
	}
	return convertWorkspaces(workspaces), nil
}

func (s *Session) RunCommand(command string) error {
	results, err := i3.RunCommand(command)
	if err == nil {
		return nil
	}
	if i3.IsUnsuccessful(err) {
		return &wserrors.CommandError{Command: command, Reason: failureReason(results, err)}
	}
	return wserrors.Wrap(wserrors.ErrCodeConnection, err, "run command %q", command)
}

// failureReason returns the window manager's message for the first failed result.
func failureReason(results []i3.CommandResult, err error) string {
	for _, r := range results {
		if !r.Success && r.Error != "" {
			return r.Error
		}
	}
	return err.Error()
}

func convertOutputs(outputs []i3.Output) []model.Output {
	result := make([]model.Output, 0, len(outputs))
	for _, o := range outputs {
		result = append(result, model.Output{
			Name: o.Name,
			Rect: model.Rect{
				X:      int(o.Rect.X),
				Y:      int(o.Rect.Y),
				Width:  int(o.Rect.Width),
				Height: int(o.Rect.Height),
			},
			Active:           o.Active,
			Primary:          o.Primary,
			CurrentWorkspace: o.CurrentWorkspace,
		})
	}
	return result
}

func convertWorkspaces(workspaces []i3.Workspace) []model.Workspace {
	result := make([]model.Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		result = append(result, model.Workspace{
			Name:    w.Name,
			Output:  w.Output,
			Focused: w.Focused,
			Visible: w.Visible,
			Urgent:  w.Urgent,
			Num:     int(w.Num),
		})
	}
	return result
}
