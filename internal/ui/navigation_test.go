package ui

import (
	"testing"

	"github.com/atomicstack/catalog-sync/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func chooseEntry(h *Harness, entry int) {
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	for i := 0; i < entry; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestChooseProductFillsFields(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	chooseEntry(h, 2)
	m := h.Model()
	if m.selector.IsOpen() {
		t.Fatalf("expected dropdown closed after choosing")
	}
	if m.selector.Value() != 2 {
		t.Fatalf("expected entry 2 chosen, got %d", m.selector.Value())
	}
	if m.form.Name() != "Table" || m.form.Price() != "99.50" {
		t.Fatalf("unexpected fields %q %q", m.form.Name(), m.form.Price())
	}
	if !m.form.Enabled() {
		t.Fatalf("expected fields enabled")
	}
}

func TestChoosePlaceholderDisablesFields(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	chooseEntry(h, 1)
	chooseEntry(h, 0)
	m := h.Model()
	if m.form.Enabled() {
		t.Fatalf("expected fields disabled")
	}
	if m.form.Name() != "Chair" {
		t.Fatalf("expected fields left untouched, got %q", m.form.Name())
	}
}

func TestTypeAheadJumpsToMatch(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	h.Type("la")
	m := h.Model()
	if !m.selector.IsOpen() {
		t.Fatalf("expected typing to open the dropdown")
	}
	if m.selector.Query != "la" {
		t.Fatalf("expected query la, got %q", m.selector.Query)
	}
	if m.selector.Cursor != 3 {
		t.Fatalf("expected cursor on Lamp, got %d", m.selector.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.selector.Query != "l" {
		t.Fatalf("expected query l, got %q", m.selector.Query)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.form.Name() == "" {
		t.Fatalf("expected a product chosen")
	}
}

func TestEscClosesDropdownThenQuits(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.selector.IsOpen() {
		t.Fatalf("expected dropdown open")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.selector.IsOpen() {
		t.Fatalf("expected esc to close the dropdown")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTabCyclesThroughForm(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	chooseEntry(h, 1)
	m := h.Model()

	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusForm || m.form.Focused() != menu.FieldName {
		t.Fatalf("expected name field focused, focus=%v field=%v", m.focus, m.form.Focused())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.form.Focused() != menu.FieldSubmit {
		t.Fatalf("expected submit focused, got %v", m.form.Focused())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSelector {
		t.Fatalf("expected focus back on the selector")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusForm || m.form.Focused() != menu.FieldSubmit {
		t.Fatalf("expected shift+tab to land on submit")
	}
}

func TestTabWithoutSelectionSkipsFields(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts())
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	m := h.Model()
	if m.form.Focused() != menu.FieldSubmit {
		t.Fatalf("expected disabled form to focus submit, got %v", m.form.Focused())
	}
}
