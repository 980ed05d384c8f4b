// Package menu builds the entries of the product selector and owns the
// name/price edit form bound to the current selection.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/catalog-sync/internal/catalog"
)

const (
	// PlaceholderLabel is entry 0 of a loaded selector: nothing selected.
	PlaceholderLabel = "Select a product"
	LoadingLabel     = "Loading..."
	ErrorLabel       = "Error loading products"
)

const (
	placeholderID = "none"
	loadingID     = "loading"
	errorID       = "error"
	productPrefix = "product:"
)

// Item represents a selector entry.
type Item struct {
	ID    string
	Label string
}

// ProductIndex returns the catalog position an item designates.
func (i Item) ProductIndex() (int, bool) {
	if !strings.HasPrefix(i.ID, productPrefix) {
		return -1, false
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(i.ID, productPrefix))
	if err != nil || idx < 0 {
		return -1, false
	}
	return idx, true
}

// ProductItemID is the identifier of the entry for catalog position idx.
func ProductItemID(idx int) string {
	return fmt.Sprintf("%s%d", productPrefix, idx)
}

// SelectableItems lists the placeholder followed by every product name. The
// list is not bounded by the number of slots.
func SelectableItems(products []catalog.Product) []Item {
	items := make([]Item, 0, len(products)+1)
	items = append(items, Item{ID: placeholderID, Label: PlaceholderLabel})
	for i, p := range products {
		items = append(items, Item{ID: ProductItemID(i), Label: p.Name})
	}
	return items
}

// LoadingItems is the selector content while the fetch is outstanding.
func LoadingItems() []Item {
	return []Item{{ID: loadingID, Label: LoadingLabel}}
}

// ErrorItems replaces the selector content after a failed fetch.
func ErrorItems() []Item {
	return []Item{{ID: errorID, Label: ErrorLabel}}
}

// Labels extracts the display labels in order.
func Labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}
