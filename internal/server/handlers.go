package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/workspace-output/internal/placement"
)

// ActionResult is the YAML result of a workspace operation.
type ActionResult struct {
	OK     bool             `yaml:"ok"`
	Action string           `yaml:"action"`
	DryRun bool             `yaml:"dry_run,omitempty"`
	Steps  []placement.Step `yaml:"steps"`
}

func toText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleListOutputs(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var infos []placement.OutputInfo
	err := s.withEngine(func(e *placement.Engine) error {
		var err error
		infos, err = e.Layout()
		return err
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(infos)
}

func (s *Server) handleListWorkspaces(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output := StringParam(request.GetArguments(), "output", "")

	var infos []placement.WorkspaceInfo
	err := s.withEngine(func(e *placement.Engine) error {
		var err error
		infos, err = e.Workspaces(output)
		return err
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(infos)
}

func (s *Server) handleSwitch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := IntParam(request.GetArguments(), "number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.runPlan(request, func(e *placement.Engine) (placement.Plan, error) {
		return e.Switch(n)
	})
}

func (s *Server) handleMoveContainer(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := IntParam(request.GetArguments(), "number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.runPlan(request, func(e *placement.Engine) (placement.Plan, error) {
		return e.MoveContainer(n)
	})
}

func (s *Server) handleMoveWorkspace(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := placement.ParseDirection(StringParam(request.GetArguments(), "direction", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.runPlan(request, func(e *placement.Engine) (placement.Plan, error) {
		return e.MoveWorkspace(d)
	})
}

// runPlan builds a plan and applies it unless dry_run is set.
func (s *Server) runPlan(request mcp.CallToolRequest, build func(*placement.Engine) (placement.Plan, error)) (*mcp.CallToolResult, error) {
	dryRun := BoolParam(request.GetArguments(), "dry_run", false)

	var plan placement.Plan
	err := s.withEngine(func(e *placement.Engine) error {
		var err error
		if plan, err = build(e); err != nil {
			return err
		}
		if dryRun {
			return nil
		}
		return e.Execute(plan, false, nil)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	steps := plan.Steps
	if steps == nil {
		steps = []placement.Step{}
	}
	return toText(ActionResult{OK: true, Action: plan.Action, DryRun: dryRun, Steps: steps})
}
