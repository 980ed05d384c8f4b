package dispatcher

import (
	"fmt"

	"github.com/atomicstack/catalog-sync/internal/backend"
	"github.com/atomicstack/catalog-sync/internal/catalog"
	"github.com/atomicstack/catalog-sync/internal/logging/events"
	"github.com/atomicstack/catalog-sync/internal/state"
)

// Result reports what Handle changed.
type Result struct {
	CatalogUpdated bool
	Err            error
	Visible        int
	Hidden         int
}

// Dispatcher applies backend events to the catalog store and the slot pool.
type Dispatcher struct {
	catalog state.CatalogStore
	slots   *state.SlotPool
}

// New returns a Dispatcher writing to c and s.
func New(c state.CatalogStore, s *state.SlotPool) *Dispatcher {
	return &Dispatcher{catalog: c, slots: s}
}

// Handle replaces the catalog and repopulates the slots on success. A failed
// fetch leaves both untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindCatalog:
		products, ok := evt.Data.([]catalog.Product)
		if !ok && evt.Data != nil {
			res.Err = fmt.Errorf("unexpected catalog payload %T", evt.Data)
			return res
		}
		d.catalog.Replace(products)
		res.CatalogUpdated = true
		if d.slots != nil {
			res.Visible = d.slots.Populate(d.catalog.Entries())
			res.Hidden = d.slots.Cap() - res.Visible
			events.Catalog.SlotsPopulated(res.Visible, res.Hidden)
		}
	}
	return res
}
