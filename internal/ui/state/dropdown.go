package state

import "github.com/atomicstack/catalog-sync/internal/menu"

// Dropdown is the product selector: a list of entries, the committed choice
// and, while open, a highlight cursor with its own viewport.
type Dropdown struct {
	Items          []menu.Item
	Cursor         int
	ViewportOffset int
	Query          string

	value int
	open  bool
}

// NewDropdown constructs a closed dropdown with entry 0 chosen.
func NewDropdown(items []menu.Item) *Dropdown {
	d := &Dropdown{}
	d.SetItems(items)
	return d
}

// SetItems replaces every entry and resets the choice to entry 0.
func (d *Dropdown) SetItems(items []menu.Item) {
	d.Items = CloneItems(items)
	d.value = 0
	d.Cursor = 0
	d.ViewportOffset = 0
	d.Query = ""
}

// SetLabel rewrites the label of entry i in place.
func (d *Dropdown) SetLabel(i int, label string) bool {
	if i < 0 || i >= len(d.Items) {
		return false
	}
	d.Items[i].Label = label
	return true
}

// Value returns the index of the committed entry.
func (d *Dropdown) Value() int {
	return d.value
}

// SetValue commits entry i.
func (d *Dropdown) SetValue(i int) bool {
	if i < 0 || i >= len(d.Items) {
		return false
	}
	d.value = i
	return true
}

// Current returns the committed entry.
func (d *Dropdown) Current() (menu.Item, bool) {
	if d.value < 0 || d.value >= len(d.Items) {
		return menu.Item{}, false
	}
	return d.Items[d.value], true
}

func (d *Dropdown) IsOpen() bool {
	return d.open
}

// Open expands the list with the cursor on the committed entry.
func (d *Dropdown) Open() bool {
	if d.open || len(d.Items) == 0 {
		return false
	}
	d.open = true
	d.Cursor = d.value
	d.Query = ""
	return true
}

// Close collapses the list without changing the choice.
func (d *Dropdown) Close() {
	d.open = false
	d.Query = ""
}

// Commit chooses the highlighted entry and closes the list. It reports the
// chosen index and whether it differs from the previous choice.
func (d *Dropdown) Commit() (int, bool) {
	d.Close()
	if d.Cursor < 0 || d.Cursor >= len(d.Items) {
		return d.value, false
	}
	changed := d.Cursor != d.value
	d.value = d.Cursor
	return d.value, changed
}
