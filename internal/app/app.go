package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/atomicstack/catalog-sync/internal/backend"
	"github.com/atomicstack/catalog-sync/internal/catalog"
	"github.com/atomicstack/catalog-sync/internal/state"
	"github.com/atomicstack/catalog-sync/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint   string
	Slots      int
	Timeout    time.Duration
	Width      int
	Height     int
	ShowFooter bool
}

// Run starts the catalog fetch and executes the Bubble Tea program until the
// user quits.
func Run(cfg Config) error {
	model, task := build(cfg, http.DefaultClient)
	defer task.Wait()
	defer task.Stop()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// build issues the fetch and wires the model over fresh stores.
func build(cfg Config, httpClient *http.Client) (*ui.Model, *backend.FetchTask) {
	client := catalog.NewClient(cfg.Endpoint, httpClient)
	task := backend.NewFetchTask(client, cfg.Timeout)
	model := ui.NewModel(
		state.NewCatalogStore(),
		state.NewSlotPool(cfg.Slots),
		task,
		cfg.Width,
		cfg.Height,
		cfg.ShowFooter,
	)
	return model, task
}
