package placement

import (
	"testing"

	"github.com/mj1618/workspace-output/internal/model"
)

func TestLayout(t *testing.T) {
	s := laptopAndMonitor()
	s.outputs = append(s.outputs, model.Output{Name: "DP-1"})
	e := New(s, Options{})

	infos, err := e.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 active outputs, got %d", len(infos))
	}
	if infos[0].Name != "HDMI-1" || infos[0].Rank != 0 || infos[0].Offset != 0 {
		t.Errorf("first = %+v", infos[0])
	}
	if infos[1].Name != "eDP-1" || infos[1].Rank != 1 || infos[1].Offset != 100 {
		t.Errorf("second = %+v", infos[1])
	}
	if len(e.Offsets().Snapshot()) != 2 {
		t.Errorf("offset table = %v", e.Offsets().Snapshot())
	}
}

func TestWorkspaces(t *testing.T) {
	s := laptopAndMonitor()
	s.workspaces = []model.Workspace{
		ws("1: 1", "HDMI-1"),
		focusedWS("mail", "eDP-1"),
		ws("102: 2", "eDP-1"),
	}
	e := New(s, Options{})

	all, err := e.Workspaces("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 workspaces, got %d", len(all))
	}
	if all[1].Local != nil {
		t.Errorf("mail should have no local number, got %d", *all[1].Local)
	}
	if !all[1].Focused || all[1].Offset != 100 {
		t.Errorf("mail = %+v", all[1])
	}

	onEDP, err := e.Workspaces("eDP-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(onEDP) != 2 || onEDP[1].Local == nil || *onEDP[1].Local != 2 {
		t.Errorf("eDP-1 workspaces = %+v", onEDP)
	}
}
