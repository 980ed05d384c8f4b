package ui

import (
	"reflect"

	"github.com/atomicstack/catalog-sync/internal/backend"
	"github.com/atomicstack/catalog-sync/internal/controller"
	"github.com/atomicstack/catalog-sync/internal/logging/events"
	"github.com/atomicstack/catalog-sync/internal/menu"
	"github.com/atomicstack/catalog-sync/internal/state"
	"github.com/atomicstack/catalog-sync/internal/theme"
	"github.com/atomicstack/catalog-sync/internal/ui/command"
	uistate "github.com/atomicstack/catalog-sync/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const appTitle = "Catalog Sync"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// focusArea is the part of the screen receiving key presses.
type focusArea int

const (
	focusSelector focusArea = iota
	focusForm
)

// Model implements the Bubble Tea model for the catalog editor.
type Model struct {
	ctrl        *controller.Controller
	selector    *uistate.Dropdown
	form        *menu.EditForm
	spinner     spinner.Model
	queryCursor cursor.Model
	keys        keyMap
	help        help.Model
	focus       focusArea

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	fetch    *backend.FetchTask
	bus      *command.Bus
	handlers map[reflect.Type]msgHandler
}

// NewModel wires the selector and the edit form to a controller over the
// given stores. fetch may be nil when the catalog is delivered by other means.
func NewModel(store state.CatalogStore, slots *state.SlotPool, fetch *backend.FetchTask, width, height int, showFooter bool) *Model {
	selector := uistate.NewDropdown(nil)
	form := menu.NewEditForm()
	m := &Model{
		ctrl:       controller.New(store, slots, selector, form),
		selector:   selector,
		form:       form,
		keys:       defaultKeyMap(),
		help:       help.New(),
		focus:      focusSelector,
		showFooter: showFooter,
		fetch:      fetch,
		bus:        command.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.Spinner != nil {
		s.Style = styles.Spinner.Copy()
	}
	m.spinner = s
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		m.help.Styles.ShortDesc = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.syncForm()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.fetch != nil {
		cmds = append(cmds, m.waitForFetch())
	}
	if cmd := m.queryCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursor(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, batch(cmds)
	}
	if m.focus == focusForm {
		if cmd, _ := m.form.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, batch(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(fetchEventMsg{}):     m.handleFetchEventMsg,
		reflect.TypeOf(fetchDoneMsg{}):      m.handleFetchDoneMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.ctrl.Status() != controller.StatusLoading {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// syncForm enables the edit fields only while a product is selected.
func (m *Model) syncForm() {
	m.form.SetEnabled(m.ctrl.FieldsEnabled())
}

func (m *Model) quit(reason string) tea.Cmd {
	events.App.Quit(reason)
	if m.fetch != nil {
		m.fetch.Stop()
	}
	return tea.Quit
}

// batch drops nil commands and avoids wrapping a lone command in a BatchMsg.
func batch(cmds []tea.Cmd) tea.Cmd {
	valid := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			valid = append(valid, cmd)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return tea.Batch(valid...)
}
