// Package i3wm provides the i3 and sway window-manager backend.
//
// Both window managers speak the i3 IPC protocol over a Unix socket. The
// socket is located from an explicit path, then $SWAYSOCK, then $I3SOCK,
// and finally by asking the i3 binary (`i3 --get-socketpath`).
//
// Importing the package registers it with platform.Connect.
package i3wm
