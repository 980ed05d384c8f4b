package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Open     key.Binding
	Choose   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Open:     key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open list")),
		Choose:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+u")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// footerHelp lists the bindings relevant to the current focus.
func (m *Model) footerHelp() string {
	var bindings []key.Binding
	switch {
	case m.selector.IsOpen():
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Back}
	case m.focus == focusForm:
		bindings = []key.Binding{m.keys.Next, m.keys.Prev, m.keys.Submit, m.keys.Back}
	default:
		bindings = []key.Binding{m.keys.Open, m.keys.Next, m.keys.Submit, m.keys.Back}
	}
	return m.help.ShortHelpView(bindings)
}
