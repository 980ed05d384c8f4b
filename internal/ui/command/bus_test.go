package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ value int }

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "catalog:fetch", Label: "test", Run: func() tea.Msg {
		return doneMsg{value: 7}
	}})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.value != 7 {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteWithoutRunYieldsNil(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
