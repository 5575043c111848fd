package placement

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
	"github.com/mj1618/workspace-output/internal/platform"
)

// Options configures an Engine.
type Options struct {
	Stride int         // Band width per output (0 = DefaultStride)
	NoWrap bool        // Fail at the edge of the layout instead of wrapping
	Logger *log.Logger // nil discards log output
}

// Engine plans workspace operations against one window-manager session.
// An Engine owns its OffsetTable; create one per invocation.
type Engine struct {
	session platform.Session
	dir     *Directory
	offsets *OffsetTable
	noWrap  bool
	logger  *log.Logger
}

// New creates an Engine with an empty OffsetTable.
func New(session platform.Session, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := NewDirectory(session)
	return &Engine{
		session: session,
		dir:     dir,
		offsets: NewOffsetTable(dir, opts.Stride),
		noWrap:  opts.NoWrap,
		logger:  logger,
	}
}

// Offsets returns the engine's offset table.
func (e *Engine) Offsets() *OffsetTable {
	return e.offsets
}

// FreeLocalNumber queries the current workspaces and picks a local number
// on output. See the package-level FreeLocalNumber.
func (e *Engine) FreeLocalNumber(output string, preferred model.Number) (int, error) {
	workspaces, err := e.session.Workspaces()
	if err != nil {
		return 0, err
	}
	return FreeLocalNumber(workspaces, output, preferred)
}

// Switch plans a switch to local number n on the focused output.
func (e *Engine) Switch(n int) (Plan, error) {
	name, output, err := e.focusedName(n)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Action: "number"}
	plan.add("workspace "+name, fmt.Sprintf("switch to workspace %d on %s", n, output))
	return plan, nil
}

// MoveContainer plans moving the focused container to local number n on
// the focused output.
func (e *Engine) MoveContainer(n int) (Plan, error) {
	name, output, err := e.focusedName(n)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Action: "move_container"}
	plan.add(fmt.Sprintf(`move container workspace "%s"`, name), fmt.Sprintf("move container to workspace %d on %s", n, output))
	return plan, nil
}

// MoveWorkspace plans moving the focused workspace to the neighbouring
// output in direction d. The workspace keeps its local number unless that
// number is taken on the target, and is renamed before it is moved.
//
// With a single active output the neighbour is the current output and the
// plan is empty.
func (e *Engine) MoveWorkspace(d Direction) (Plan, error) {
	plan := Plan{Action: "move_workspace"}

	current, err := e.focused()
	if err != nil {
		return Plan{}, err
	}
	target, err := e.dir.Neighbor(current.Output, d, !e.noWrap)
	if err != nil {
		return Plan{}, err
	}
	if target.Name == current.Output {
		e.logger.Debug("no other output in direction", "direction", d, "output", current.Output)
		return plan, nil
	}

	preferred := current.LocalNumber()
	n, err := e.FreeLocalNumber(target.Name, preferred)
	if err != nil {
		return Plan{}, err
	}
	offset, err := e.offsets.OffsetFor(target.Name)
	if err != nil {
		return Plan{}, err
	}
	name := model.FormatName(offset+n, n)
	e.logger.Debug("resolved target",
		"workspace", current.Name,
		"from", current.Output,
		"to", target.Name,
		"preferred", preferred,
		"local", n,
		"offset", offset,
	)

	reason := fmt.Sprintf("keep workspace %d on %s", n, target.Name)
	if !preferred.Is(n) {
		reason = fmt.Sprintf("workspace %s is taken on %s, use %d", preferred, target.Name, n)
	}
	plan.add(fmt.Sprintf(`rename workspace to "%s"`, name), reason)
	plan.add("move workspace to output "+target.Name, fmt.Sprintf("move %s of %s", d, current.Output))
	return plan, nil
}

// Execute applies the plan to the session, or prints it to w when dryRun is set.
func (e *Engine) Execute(plan Plan, dryRun bool, w io.Writer) error {
	if dryRun {
		e.logger.Info("dry run, not applying", "action", plan.Action, "steps", len(plan.Steps))
		return plan.Print(w)
	}
	for _, s := range plan.Steps {
		e.logger.Debug("command", "action", plan.Action, "command", s.Command)
	}
	if err := plan.Apply(e.session); err != nil {
		return err
	}
	e.logger.Debug("applied", "action", plan.Action, "steps", len(plan.Steps))
	return nil
}

func (e *Engine) focused() (model.Workspace, error) {
	workspaces, err := e.session.Workspaces()
	if err != nil {
		return model.Workspace{}, err
	}
	w, ok := model.FindFocused(workspaces)
	if !ok {
		return model.Workspace{}, wserrors.New(wserrors.ErrCodeNoFocusedWorkspace, "no focused workspace")
	}
	return w, nil
}

// focusedName returns the global workspace name for local number n on the
// focused output.
func (e *Engine) focusedName(n int) (name, output string, err error) {
	if n < 0 {
		return "", "", wserrors.New(wserrors.ErrCodeInvalidInput, "workspace number must not be negative, got %d", n)
	}
	w, err := e.focused()
	if err != nil {
		return "", "", err
	}
	offset, err := e.offsets.OffsetFor(w.Output)
	if err != nil {
		return "", "", err
	}
	e.logger.Debug("resolved offset", "output", w.Output, "offset", offset, "local", n)
	return model.FormatName(offset+n, n), w.Output, nil
}
