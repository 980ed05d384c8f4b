package ui

import (
	"errors"

	"github.com/atomicstack/catalog-sync/internal/backend"
	"github.com/atomicstack/catalog-sync/internal/controller"
	"github.com/atomicstack/catalog-sync/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var errFetchAborted = errors.New("catalog fetch ended without a result")

type fetchEventMsg struct {
	event backend.Event
}

type fetchDoneMsg struct{}

// FetchEvent wraps a fetch result so it can be delivered to Model.Update
// by callers that read the task's channel themselves.
func FetchEvent(evt backend.Event) tea.Msg {
	return fetchEventMsg{event: evt}
}

func (m *Model) waitForFetch() tea.Cmd {
	task := m.fetch
	return m.bus.Execute(command.Request{
		ID:    "catalog:fetch",
		Label: "await catalog",
		Run: func() tea.Msg {
			evt, ok := <-task.Events()
			if !ok {
				return fetchDoneMsg{}
			}
			return fetchEventMsg{event: evt}
		},
	})
}

func (m *Model) handleFetchEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(fetchEventMsg)
	if !ok {
		return nil
	}
	_ = m.ctrl.HandleFetch(eventMsg.event)
	m.syncForm()
	if m.fetch != nil {
		return m.waitForFetch()
	}
	return nil
}

func (m *Model) handleFetchDoneMsg(msg tea.Msg) tea.Cmd {
	m.fetch = nil
	if m.ctrl.Status() == controller.StatusLoading {
		_ = m.ctrl.HandleFetch(backend.Event{Kind: backend.KindCatalog, Err: errFetchAborted})
		m.syncForm()
	}
	return nil
}
