package platform

import (
	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

// ConnectOptions controls how the window-manager socket is located.
type ConnectOptions struct {
	Socket string // Explicit socket path (empty = autodetect)
}

// ErrUnsupported is returned when no window-manager backend is registered.
var ErrUnsupported = wserrors.New(wserrors.ErrCodeConnection, "no window manager backend available; supported: i3, sway")

// ConnectFunc is set by backend packages via init().
// See internal/platform/i3wm/init.go for the i3/sway registration.
var ConnectFunc func(opts ConnectOptions) (Session, error)

// Connect opens a session with the running window manager.
func Connect(opts ConnectOptions) (Session, error) {
	if ConnectFunc == nil {
		return nil, ErrUnsupported
	}
	return ConnectFunc(opts)
}
