package menu

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies a focusable element of the edit form.
type Field int

const (
	FieldName Field = iota
	FieldPrice
	FieldSubmit
	fieldCount
)

// EditForm holds the two text fields bound to the selected product and the
// submit button. Values are kept verbatim: validation happens on submit.
type EditForm struct {
	name    textinput.Model
	price   textinput.Model
	focus   Field
	enabled bool
	active  bool
}

func NewEditForm() *EditForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "product name"
	name.CharLimit = 0

	price := textinput.New()
	price.Prompt = ""
	price.Placeholder = "0.00"
	price.CharLimit = 0

	return &EditForm{
		name:  name,
		price: price,
		focus: FieldName,
	}
}

func (f *EditForm) Name() string      { return f.name.Value() }
func (f *EditForm) Price() string     { return f.price.Value() }
func (f *EditForm) NameView() string  { return f.name.View() }
func (f *EditForm) PriceView() string { return f.price.View() }
func (f *EditForm) Focused() Field    { return f.focus }
func (f *EditForm) Enabled() bool     { return f.enabled }
func (f *EditForm) SetName(v string)  { f.name.SetValue(v) }
func (f *EditForm) SetPrice(v string) { f.price.SetValue(v) }

// SetEnabled toggles whether the text fields accept input. The submit button
// stays reachable either way.
func (f *EditForm) SetEnabled(enabled bool) {
	f.enabled = enabled
	if !enabled && f.focus != FieldSubmit {
		f.focus = FieldSubmit
		f.syncFocus()
	}
}

// SetCursorMode applies mode to the cursor of both text fields.
func (f *EditForm) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return tea.Batch(f.name.Cursor.SetMode(mode), f.price.Cursor.SetMode(mode))
}

// FocusField activates the form with focus on field. Text fields fall back to
// the submit button while disabled.
func (f *EditForm) FocusField(field Field) tea.Cmd {
	f.active = true
	if field < FieldName || field >= fieldCount || (!f.enabled && field != FieldSubmit) {
		field = FieldSubmit
	}
	f.focus = field
	return f.syncFocus()
}

// Deactivate returns focus to the selector.
func (f *EditForm) Deactivate() {
	f.active = false
	f.name.Blur()
	f.price.Blur()
}

// FocusNext cycles forward through the focusable elements, skipping the text
// fields while disabled.
func (f *EditForm) FocusNext() tea.Cmd {
	return f.move(1)
}

// FocusPrev cycles backward.
func (f *EditForm) FocusPrev() tea.Cmd {
	return f.move(-1)
}

func (f *EditForm) move(delta int) tea.Cmd {
	next := f.focus
	for i := 0; i < int(fieldCount); i++ {
		next = Field((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if f.enabled || next == FieldSubmit {
			break
		}
	}
	f.focus = next
	return f.syncFocus()
}

func (f *EditForm) syncFocus() tea.Cmd {
	f.name.Blur()
	f.price.Blur()
	if !f.active {
		return nil
	}
	switch f.focus {
	case FieldName:
		return f.name.Focus()
	case FieldPrice:
		return f.price.Focus()
	}
	return nil
}

// Update routes a message to the focused element. submit reports that the
// user asked to apply the changes.
func (f *EditForm) Update(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			return f.FocusNext(), false
		case tea.KeyShiftTab, tea.KeyUp:
			return f.FocusPrev(), false
		case tea.KeyEnter:
			return nil, true
		}
		if key.String() == "ctrl+u" {
			switch f.focus {
			case FieldName:
				f.name.SetValue("")
			case FieldPrice:
				f.price.SetValue("")
			}
			return nil, false
		}
	}
	if !f.enabled {
		return nil, false
	}
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldPrice:
		f.price, cmd = f.price.Update(msg)
	}
	return cmd, false
}
