package placement

import (
	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
)

// FreeLocalNumber picks the local number a workspace should take on output.
//
// A concrete preferred number that is not in use on output is returned as
// is, so a moved workspace keeps its number. Otherwise (no preference, or a
// collision) the lowest unused number in 1..max+1 is returned, where max is
// the highest defined local number on output (0 if none is defined).
func FreeLocalNumber(workspaces []model.Workspace, output string, preferred model.Number) (int, error) {
	onOutput := model.OnOutput(workspaces, output)

	used := make(map[int]bool, len(onOutput))
	highest, anyDefined := 0, false
	for _, w := range onOutput {
		n := w.LocalNumber()
		if !n.Valid {
			continue
		}
		used[n.Value] = true
		if !anyDefined || n.Value > highest {
			highest, anyDefined = n.Value, true
		}
	}

	if preferred.Valid && !used[preferred.Value] {
		return preferred.Value, nil
	}

	if len(onOutput) == 0 {
		return 0, wserrors.New(wserrors.ErrCodeNoWorkspacesOnOutput, "output %q has no workspaces", output)
	}
	for n := 1; n <= highest+1; n++ {
		if !used[n] {
			return n, nil
		}
	}
	// Only negative numbers are defined.
	return 1, nil
}
