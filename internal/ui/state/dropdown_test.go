package state

import (
	"testing"

	"github.com/atomicstack/catalog-sync/internal/menu"
)

func newTestDropdown(labels ...string) *Dropdown {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{ID: label, Label: label}
	}
	return NewDropdown(items)
}

func TestDropdownSetItemsResetsChoice(t *testing.T) {
	d := newTestDropdown("a", "b", "c")
	d.SetValue(2)
	d.SetItems([]menu.Item{{ID: "x", Label: "x"}})
	if d.Value() != 0 || d.Cursor != 0 {
		t.Fatalf("expected reset to 0, got value %d cursor %d", d.Value(), d.Cursor)
	}
	if len(d.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(d.Items))
	}
}

func TestDropdownSetValueBounds(t *testing.T) {
	d := newTestDropdown("a", "b")
	if d.SetValue(2) || d.SetValue(-1) {
		t.Fatalf("expected out of range values rejected")
	}
	if !d.SetValue(1) || d.Value() != 1 {
		t.Fatalf("expected value 1, got %d", d.Value())
	}
	if item, ok := d.Current(); !ok || item.Label != "b" {
		t.Fatalf("unexpected current item %#v", item)
	}
}

func TestDropdownOpenCommit(t *testing.T) {
	d := newTestDropdown("none", "Chair", "Lamp")
	d.SetValue(1)
	if !d.Open() || !d.IsOpen() {
		t.Fatalf("expected dropdown to open")
	}
	if d.Cursor != 1 {
		t.Fatalf("expected cursor on committed entry, got %d", d.Cursor)
	}
	d.MoveCursorDown()
	idx, changed := d.Commit()
	if idx != 2 || !changed || d.IsOpen() {
		t.Fatalf("expected commit to 2, got %d changed=%v open=%v", idx, changed, d.IsOpen())
	}
	d.Open()
	if _, changed := d.Commit(); changed {
		t.Fatalf("expected unchanged commit")
	}
}

func TestDropdownCloseKeepsValue(t *testing.T) {
	d := newTestDropdown("none", "Chair")
	d.Open()
	d.MoveCursorEnd()
	d.Close()
	if d.Value() != 0 {
		t.Fatalf("expected value unchanged after close, got %d", d.Value())
	}
}

func TestDropdownSetLabel(t *testing.T) {
	d := newTestDropdown("none", "Chair")
	if !d.SetLabel(1, "Armchair") || d.Items[1].Label != "Armchair" {
		t.Fatalf("expected label rewritten, got %#v", d.Items)
	}
	if d.SetLabel(5, "x") {
		t.Fatalf("expected out of range label rejected")
	}
}

func TestMoveCursorHome(t *testing.T) {
	d := newTestDropdown("a", "b", "c")
	d.Cursor = 2
	if !d.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if d.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", d.Cursor)
	}

	empty := newTestDropdown()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty dropdown")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	d := newTestDropdown("a", "b", "c", "d", "e")
	if !d.MoveCursorPageDown(2) || d.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", d.Cursor)
	}
	if !d.MoveCursorPageDown(2) || d.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", d.Cursor)
	}
	if d.MoveCursorPageDown(2) {
		t.Fatalf("expected no movement past end")
	}
	if !d.MoveCursorPageUp(3) || d.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", d.Cursor)
	}
	if !d.MoveCursorUp() || d.MoveCursorUp() {
		t.Fatalf("expected single step then stop at top")
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	d := newTestDropdown("a", "b", "c", "d", "e", "f")
	d.Cursor = 5
	d.EnsureCursorVisible(3)
	if d.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", d.ViewportOffset)
	}
	d.Cursor = 1
	d.EnsureCursorVisible(3)
	if d.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", d.ViewportOffset)
	}
	d.EnsureCursorVisible(0)
	if d.ViewportOffset != 0 {
		t.Fatalf("expected offset reset, got %d", d.ViewportOffset)
	}
}

func TestTypeAheadJumpsWithoutHiding(t *testing.T) {
	d := newTestDropdown("Select a product", "Chair", "Lamp", "Armchair")
	if d.AppendQuery("l") {
		t.Fatalf("expected query ignored while closed")
	}
	d.Open()
	d.AppendQuery("la")
	if d.Cursor != 2 {
		t.Fatalf("expected jump to Lamp, got %d", d.Cursor)
	}
	if len(d.Items) != 4 {
		t.Fatalf("expected entries preserved, got %d", len(d.Items))
	}
	d.DeleteQueryRune()
	d.DeleteQueryRune()
	if d.Query != "" || d.DeleteQueryRune() {
		t.Fatalf("expected empty query, got %q", d.Query)
	}
	d.AppendQuery("arm")
	if d.Cursor != 3 {
		t.Fatalf("expected jump to Armchair, got %d", d.Cursor)
	}
	d.Close()
	if d.Query != "" {
		t.Fatalf("expected query cleared on close")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "0", Label: "Select a product"},
		{ID: "1", Label: "Wooden Chair"},
		{ID: "2", Label: "Desk Lamp"},
	}
	cases := map[string]int{
		"":          -1,
		"desk lamp": 2,
		"wood":      1,
		"lamp":      2,
		"wchr":      1,
		"zzz":       -1,
	}
	for query, want := range cases {
		if got := BestMatchIndex(items, query); got != want {
			t.Fatalf("BestMatchIndex(%q) = %d, want %d", query, got, want)
		}
	}
}
