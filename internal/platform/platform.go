package platform

import "github.com/mj1618/workspace-output/internal/model"

// Session is a live connection to the window manager.
//
// Every call is a fresh snapshot; two calls may observe different states if
// the window manager changes in between.
type Session interface {
	// Outputs returns all outputs, active or not.
	Outputs() ([]model.Output, error)

	// Workspaces returns all workspaces across all outputs.
	Workspaces() ([]model.Workspace, error)

	// RunCommand executes a single window-manager command.
	// A rejected command yields an *errors.CommandError.
	RunCommand(command string) error
}
