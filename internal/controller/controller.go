// Package controller implements the catalog sync flow: apply the single
// fetch result, project the catalog onto slots and the selector, and apply
// name/price edits to the selected product.
//
// The controller never touches widgets directly. The selector and the edit
// fields are reached through the Selector and Fields interfaces; the slot
// pool and the feedback label are plain state read by the view.
package controller

import (
	"errors"

	"github.com/atomicstack/catalog-sync/internal/backend"
	"github.com/atomicstack/catalog-sync/internal/catalog"
	"github.com/atomicstack/catalog-sync/internal/data/dispatcher"
	"github.com/atomicstack/catalog-sync/internal/logging"
	"github.com/atomicstack/catalog-sync/internal/logging/events"
	"github.com/atomicstack/catalog-sync/internal/menu"
	"github.com/atomicstack/catalog-sync/internal/state"
)

// Selector is the selectable list: entry 0 means nothing selected, entry
// j >= 1 designates catalog position j-1.
type Selector interface {
	SetItems([]menu.Item)
	SetLabel(int, string) bool
	Value() int
}

// Fields are the name and price text inputs.
type Fields interface {
	Name() string
	Price() string
	SetName(string)
	SetPrice(string)
}

// Status tracks the fetch lifecycle.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// FeedbackKind selects the feedback label style.
type FeedbackKind int

const (
	FeedbackSuccess FeedbackKind = iota
	FeedbackError
)

// Feedback is the transient message shown after select/submit.
type Feedback struct {
	Text    string
	Kind    FeedbackKind
	Visible bool
}

const successMessage = "Changes applied successfully."

type Controller struct {
	catalog    state.CatalogStore
	slots      *state.SlotPool
	dispatcher *dispatcher.Dispatcher
	selector   Selector
	fields     Fields
	feedback   Feedback
	status     Status
	fetchErr   error
}

// New wires the controller and shows the loading entry in the selector.
func New(store state.CatalogStore, slots *state.SlotPool, selector Selector, fields Fields) *Controller {
	c := &Controller{
		catalog:    store,
		slots:      slots,
		dispatcher: dispatcher.New(store, slots),
		selector:   selector,
		fields:     fields,
		status:     StatusLoading,
	}
	c.selector.SetItems(menu.LoadingItems())
	return c
}

func (c *Controller) Status() Status              { return c.status }
func (c *Controller) FetchErr() error             { return c.fetchErr }
func (c *Controller) Feedback() Feedback          { return c.feedback }
func (c *Controller) Catalog() state.CatalogStore { return c.catalog }
func (c *Controller) Slots() *state.SlotPool      { return c.slots }

// HandleFetch applies the result of the one catalog fetch. On failure the
// catalog stays empty, the slots stay as they are and the selector shows a
// single error entry.
func (c *Controller) HandleFetch(evt backend.Event) error {
	if c.status != StatusLoading {
		return nil
	}
	res := c.dispatcher.Handle(evt)
	if res.Err != nil {
		c.status = StatusFailed
		c.fetchErr = res.Err
		logging.Error(res.Err)
		c.selector.SetItems(menu.ErrorItems())
		return res.Err
	}
	c.status = StatusLoaded
	c.populateSelector()
	return nil
}

func (c *Controller) populateSelector() {
	c.selector.SetItems(menu.SelectableItems(c.catalog.Entries()))
}

// Selection returns the catalog position currently chosen in the selector.
func (c *Controller) Selection() (int, bool) {
	return c.productAt(c.selector.Value())
}

func (c *Controller) productAt(entry int) (int, bool) {
	if !c.catalog.Loaded() || entry < 1 {
		return -1, false
	}
	idx := entry - 1
	if _, ok := c.catalog.At(idx); !ok {
		return -1, false
	}
	return idx, true
}

// FieldsEnabled reports whether the edit fields may accept input.
func (c *Controller) FieldsEnabled() bool {
	_, ok := c.Selection()
	return ok
}

// Select reacts to the selector choosing entry. A product entry loads its
// name and price into the fields; entry 0 leaves the fields as they are.
// Both hide any visible feedback.
func (c *Controller) Select(entry int) {
	if entry == 0 {
		events.Selection.Choose(entry, menu.PlaceholderLabel)
		c.hideFeedback()
		return
	}
	idx, ok := c.productAt(entry)
	if !ok {
		return
	}
	product, _ := c.catalog.At(idx)
	events.Selection.Choose(entry, product.Name)
	c.fields.SetName(product.Name)
	c.fields.SetPrice(catalog.FormatPrice(product.Price))
	c.hideFeedback()
}

// Submit applies the edit fields to the selected product. Name and price are
// applied independently: a committed name is kept when the price turns out
// to be invalid. Failures are returned as *catalog.ValidationError.
func (c *Controller) Submit() error {
	entry := c.selector.Value()
	idx, ok := c.productAt(entry)
	if !ok {
		return c.reject(&catalog.ValidationError{Reason: catalog.ErrNoSelection})
	}
	c.hideFeedback()

	name, priceText := c.fields.Name(), c.fields.Price()
	events.Edit.Submit(idx, name, priceText)

	if name != "" {
		c.rename(idx, entry, name)
	}

	price, ok, err := catalog.ParsePrice(priceText)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			return c.reject(verr)
		}
		return c.reject(&catalog.ValidationError{Reason: catalog.ErrInvalidPrice, Input: priceText})
	}
	if ok {
		c.reprice(idx, price)
	}

	events.Edit.Applied(idx)
	c.showFeedback(successMessage, FeedbackSuccess)
	return nil
}

func (c *Controller) rename(idx, entry int, name string) {
	before, _ := c.catalog.At(idx)
	c.catalog.SetName(idx, name)
	c.slots.SetName(idx, name)
	c.selector.SetLabel(entry, name)
	events.Edit.Rename(idx, before.Name, name)
}

func (c *Controller) reprice(idx int, price float64) {
	before, _ := c.catalog.At(idx)
	c.catalog.SetPrice(idx, price)
	c.slots.SetPrice(idx, price)
	events.Edit.Reprice(idx, before.Price, price)
}

func (c *Controller) reject(err *catalog.ValidationError) error {
	events.Edit.Invalid(err)
	c.showFeedback(err.Message(), FeedbackError)
	return err
}

func (c *Controller) showFeedback(text string, kind FeedbackKind) {
	c.feedback = Feedback{Text: text, Kind: kind, Visible: true}
}

func (c *Controller) hideFeedback() {
	c.feedback.Visible = false
}
