package placement

import (
	"errors"
	"fmt"
	"io"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

// Step is one window-manager command of a Plan.
type Step struct {
	Command string `yaml:"command"          json:"command"`
	Reason  string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Plan is the ordered list of commands produced for one request.
type Plan struct {
	Action string `yaml:"action" json:"action"`
	Steps  []Step `yaml:"steps"  json:"steps"`
}

// Commander executes window-manager commands.
type Commander interface {
	RunCommand(command string) error
}

func (p *Plan) add(command, reason string) {
	p.Steps = append(p.Steps, Step{Command: command, Reason: reason})
}

// Commands returns the command strings in order.
func (p Plan) Commands() []string {
	commands := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		commands = append(commands, s.Command)
	}
	return commands
}

// Empty reports whether the plan has nothing to do.
func (p Plan) Empty() bool {
	return len(p.Steps) == 0
}

// Apply runs the steps in order and stops at the first failure. Steps that
// ran before the failure are not undone.
func (p Plan) Apply(c Commander) error {
	for i, s := range p.Steps {
		if err := c.RunCommand(s.Command); err != nil {
			var ce *wserrors.CommandError
			if errors.As(err, &ce) {
				ce.Applied = i
				return ce
			}
			return fmt.Errorf("%s: step %d of %d: %w", p.Action, i+1, len(p.Steps), err)
		}
	}
	return nil
}

// Print writes the commands to w, one per line, without running them.
func (p Plan) Print(w io.Writer) error {
	for _, s := range p.Steps {
		if _, err := fmt.Fprintln(w, s.Command); err != nil {
			return err
		}
	}
	return nil
}
