package placement

import (
	"github.com/mj1618/workspace-output/internal/model"
)

// OutputInfo describes an active output and its number band.
type OutputInfo struct {
	Name             string     `yaml:"name"                        json:"name"`
	Rank             int        `yaml:"rank"                        json:"rank"`
	Offset           int        `yaml:"offset"                      json:"offset"`
	Rect             model.Rect `yaml:"rect"                        json:"rect"`
	Primary          bool       `yaml:"primary,omitempty"           json:"primary,omitempty"`
	CurrentWorkspace string     `yaml:"current_workspace,omitempty" json:"current_workspace,omitempty"`
}

// WorkspaceInfo describes a workspace and how its name decodes.
type WorkspaceInfo struct {
	Name    string `yaml:"name"              json:"name"`
	Output  string `yaml:"output"            json:"output"`
	Local   *int   `yaml:"local,omitempty"   json:"local,omitempty"`
	Offset  int    `yaml:"offset"            json:"offset"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// Layout lists the active outputs by name with their offsets.
func (e *Engine) Layout() ([]OutputInfo, error) {
	sorted, err := e.dir.SortedByName()
	if err != nil {
		return nil, err
	}
	infos := make([]OutputInfo, 0, len(sorted))
	for rank, o := range sorted {
		offset, err := e.offsets.OffsetFor(o.Name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, OutputInfo{
			Name:             o.Name,
			Rank:             rank,
			Offset:           offset,
			Rect:             o.Rect,
			Primary:          o.Primary,
			CurrentWorkspace: o.CurrentWorkspace,
		})
	}
	return infos, nil
}

// Workspaces lists workspaces, optionally only those on one output.
func (e *Engine) Workspaces(output string) ([]WorkspaceInfo, error) {
	workspaces, err := e.session.Workspaces()
	if err != nil {
		return nil, err
	}
	if output != "" {
		workspaces = model.OnOutput(workspaces, output)
	}
	infos := make([]WorkspaceInfo, 0, len(workspaces))
	for _, w := range workspaces {
		offset, err := e.offsets.OffsetFor(w.Output)
		if err != nil {
			return nil, err
		}
		info := WorkspaceInfo{
			Name:    w.Name,
			Output:  w.Output,
			Offset:  offset,
			Focused: w.Focused,
		}
		if n := w.LocalNumber(); n.Valid {
			local := n.Value
			info.Local = &local
		}
		infos = append(infos, info)
	}
	return infos, nil
}
