package model

// Rect is the position and size of an output in the global layout.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Output represents a physical display managed by the window manager.
type Output struct {
	Name             string `yaml:"name"                        json:"name"`
	Rect             Rect   `yaml:"rect"                        json:"rect"`
	Active           bool   `yaml:"active"                      json:"active"`
	Primary          bool   `yaml:"primary,omitempty"           json:"primary,omitempty"`
	CurrentWorkspace string `yaml:"current_workspace,omitempty" json:"current_workspace,omitempty"`
}

// Workspace represents a named virtual desktop bound to one output.
type Workspace struct {
	Name    string `yaml:"name"              json:"name"`
	Output  string `yaml:"output"            json:"output"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
	Visible bool   `yaml:"visible,omitempty" json:"visible,omitempty"`
	Urgent  bool   `yaml:"urgent,omitempty"  json:"urgent,omitempty"`
	Num     int    `yaml:"num,omitempty"     json:"num,omitempty"`
}

// LocalNumber returns the per-output number encoded in the workspace name.
func (w Workspace) LocalNumber() Number {
	return ParseLocalNumber(w.Name)
}

// OnOutput returns the workspaces owned by the named output, preserving order.
func OnOutput(workspaces []Workspace, output string) []Workspace {
	var result []Workspace
	for _, w := range workspaces {
		if w.Output == output {
			result = append(result, w)
		}
	}
	return result
}

// FindFocused returns the focused workspace, if any.
func FindFocused(workspaces []Workspace) (Workspace, bool) {
	for _, w := range workspaces {
		if w.Focused {
			return w, true
		}
	}
	return Workspace{}, false
}
