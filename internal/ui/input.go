package ui

import (
	"github.com/atomicstack/catalog-sync/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateQueryCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

// handleQueryInput feeds type-ahead keys to the open selector.
func (m *Model) handleQueryInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.selector.DeleteQueryRune() {
			return false
		}
		m.noteQueryChange()
		return true
	}
	text, ok := typedText(msg)
	if !ok {
		return false
	}
	return m.appendQuery(text)
}

func (m *Model) appendQuery(text string) bool {
	if !m.selector.AppendQuery(text) {
		return false
	}
	m.noteQueryChange()
	return true
}

func (m *Model) noteQueryChange() {
	m.selector.EnsureCursorVisible(m.maxVisibleItems())
	events.Selection.Jump(m.selector.Query, m.selector.Cursor)
}

// queryPrompt renders the type-ahead line shown under an open selector.
func (m *Model) queryPrompt() string {
	prompt := render(styles.Query, "» ")
	if m.selector.Query == "" {
		return prompt + m.renderQueryCursor(" ") + render(styles.FieldDisabled, "(type to jump)")
	}
	return prompt + render(styles.Query, m.selector.Query) + m.renderQueryCursor(" ")
}

func (m *Model) renderQueryCursor(char string) string {
	m.queryCursor.SetChar(char)
	base := m.queryCursor.TextStyle.Copy().Inline(true)
	if m.queryCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Render(char)
	}
	return base.Reverse(true).Render(char)
}
