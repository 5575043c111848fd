package placement

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

func asCommandError(err error, target **wserrors.CommandError) bool {
	return errors.As(err, target)
}

type brokenCommander struct{ calls int }

func (b *brokenCommander) RunCommand(string) error {
	b.calls++
	return fmt.Errorf("broken pipe")
}

func TestPlan_ApplyStopsAtTransportError(t *testing.T) {
	plan := Plan{Action: "move_workspace"}
	plan.add("a", "")
	plan.add("b", "")

	c := &brokenCommander{}
	err := plan.Apply(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if c.calls != 1 {
		t.Errorf("expected 1 call, got %d", c.calls)
	}
	if got := err.Error(); got != "move_workspace: step 1 of 2: broken pipe" {
		t.Errorf("error = %q", got)
	}
}

func TestPlan_PrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Plan{}).Print(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty plan printed %q", buf.String())
	}
	if !(Plan{}).Empty() {
		t.Error("zero plan should be empty")
	}
}

func TestPlan_Commands(t *testing.T) {
	plan := Plan{}
	plan.add("first", "one")
	plan.add("second", "two")
	got := plan.Commands()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Commands() = %q", got)
	}
}
