package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/catalog-sync/internal/catalog"
)

func TestViewShowsPlaceholderSlotsBeforeLoad(t *testing.T) {
	m := newTestModel(t, 2)
	view := m.View()
	for _, want := range []string{"Product 1", "Product 2", "--"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewHidesUnusedSlots(t *testing.T) {
	h := loadedHarness(t, 3, sampleProducts()[:2])
	view := h.View()
	if !strings.Contains(view, "Slot 2") || strings.Contains(view, "Slot 3") {
		t.Fatalf("expected two slot panels, view:\n%s", view)
	}
	if !strings.Contains(view, "99.50") || !strings.Contains(view, "Oak") {
		t.Fatalf("expected price and description rendered, view:\n%s", view)
	}
	if strings.Count(view, "Info") != 1 {
		t.Fatalf("expected description row only for products with one")
	}
}

func TestViewListsEveryProductWhenOpen(t *testing.T) {
	products := append(sampleProducts(), catalog.Product{Name: "Shelf", Price: 5})
	h := loadedHarness(t, 1, products)
	h.Send(keyEnter())
	view := h.View()
	for _, p := range products {
		if !strings.Contains(view, p.Name) {
			t.Fatalf("expected %q listed, view:\n%s", p.Name, view)
		}
	}
	if strings.Contains(view, "Slot 2") {
		t.Fatalf("expected a single slot panel")
	}
}

func TestViewFooter(t *testing.T) {
	m := newTestModel(t, 1)
	m.showFooter = true
	if !strings.Contains(m.View(), "ctrl+s submit") {
		t.Fatalf("expected footer help in view")
	}
}

func TestViewRespectsHeight(t *testing.T) {
	m := newTestModel(t, 3)
	m.height = 5
	if lines := strings.Split(m.View(), "\n"); len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
