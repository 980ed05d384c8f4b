package ui

import (
	"unicode"

	"github.com/atomicstack/catalog-sync/internal/logging/events"
	"github.com/atomicstack/catalog-sync/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit("interrupt")
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	}
	if m.selector.IsOpen() {
		return m.handleOpenSelectorKey(keyMsg)
	}
	if m.focus == focusForm {
		return m.handleFormKey(keyMsg)
	}
	return m.handleSelectorKey(keyMsg)
}

func (m *Model) handleSelectorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.quit("escape")
	case key.Matches(msg, m.keys.Next):
		return m.focusFormAt(false)
	case key.Matches(msg, m.keys.Prev):
		return m.focusFormAt(true)
	case key.Matches(msg, m.keys.Open):
		m.openSelector()
		return nil
	}
	if text, ok := typedText(msg); ok {
		if m.openSelector() {
			m.appendQuery(text)
		}
	}
	return nil
}

func (m *Model) handleOpenSelectorKey(msg tea.KeyMsg) tea.Cmd {
	d := m.selector
	moved := false
	switch {
	case key.Matches(msg, m.keys.Back):
		d.Close()
		return nil
	case key.Matches(msg, m.keys.Choose):
		return m.commitSelector()
	case key.Matches(msg, m.keys.Next):
		d.Close()
		return m.focusFormAt(false)
	case key.Matches(msg, m.keys.Up):
		moved = d.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		moved = d.MoveCursorDown()
	case key.Matches(msg, m.keys.PageUp):
		moved = d.MoveCursorPageUp(m.maxVisibleItems())
	case key.Matches(msg, m.keys.PageDown):
		moved = d.MoveCursorPageDown(m.maxVisibleItems())
	case key.Matches(msg, m.keys.Home):
		moved = d.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = d.MoveCursorEnd()
	case key.Matches(msg, m.keys.Clear):
		d.ClearQuery()
		return nil
	default:
		m.handleQueryInput(msg)
		return nil
	}
	if moved {
		d.ClearQuery()
		d.EnsureCursorVisible(m.maxVisibleItems())
		events.Selection.Cursor(d.Cursor)
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.focusSelector()
		return nil
	case key.Matches(msg, m.keys.Next) && m.form.Focused() == menu.FieldSubmit:
		m.focusSelector()
		return nil
	case key.Matches(msg, m.keys.Prev) && m.form.Focused() == m.firstFormField():
		m.focusSelector()
		return nil
	}
	cmd, submit := m.form.Update(msg)
	if submit {
		return m.submit()
	}
	return cmd
}

func (m *Model) openSelector() bool {
	if !m.selector.Open() {
		return false
	}
	m.selector.EnsureCursorVisible(m.maxVisibleItems())
	return true
}

// commitSelector applies the highlighted entry. The controller only hears
// about actual changes of choice.
func (m *Model) commitSelector() tea.Cmd {
	idx, changed := m.selector.Commit()
	if !changed {
		return nil
	}
	m.ctrl.Select(idx)
	m.syncForm()
	return nil
}

func (m *Model) focusSelector() {
	m.form.Deactivate()
	m.focus = focusSelector
}

func (m *Model) focusFormAt(last bool) tea.Cmd {
	m.selector.Close()
	m.focus = focusForm
	if last {
		return m.form.FocusField(menu.FieldSubmit)
	}
	return m.form.FocusField(m.firstFormField())
}

func (m *Model) firstFormField() menu.Field {
	if m.form.Enabled() {
		return menu.FieldName
	}
	return menu.FieldSubmit
}

func (m *Model) submit() tea.Cmd {
	m.selector.Close()
	_ = m.ctrl.Submit()
	m.syncForm()
	return nil
}

// typedText returns printable text carried by a key press.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return "", false
			}
		}
		return string(msg.Runes), true
	}
	return "", false
}
