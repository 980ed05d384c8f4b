package state

import (
	"fmt"

	"github.com/atomicstack/catalog-sync/internal/catalog"
)

// Label is one text surface of a slot.
type Label struct {
	text string
}

func (l *Label) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

func (l *Label) SetText(text string) {
	if l == nil {
		return
	}
	l.text = text
}

// Slot is a fixed display surface bound by position to a catalog entry. The
// text surfaces are wired at construction.
type Slot struct {
	Index       int
	Name        *Label
	Price       *Label
	Description *Label
	visible     bool
}

func (s *Slot) Visible() bool {
	return s != nil && s.visible
}

// SlotPool is a capacity-bounded set of slots. Entity i maps to slot i when
// i < Cap(); later entities have no slot.
type SlotPool struct {
	slots []*Slot
}

// NewSlotPool creates capacity slots, all visible and showing placeholder text
// until the first Populate.
func NewSlotPool(capacity int) *SlotPool {
	if capacity < 0 {
		capacity = 0
	}
	slots := make([]*Slot, capacity)
	for i := range slots {
		slots[i] = &Slot{
			Index:       i,
			Name:        &Label{text: fmt.Sprintf("Product %d", i+1)},
			Price:       &Label{text: "--"},
			Description: &Label{},
			visible:     true,
		}
	}
	return &SlotPool{slots: slots}
}

func (p *SlotPool) Cap() int {
	return len(p.slots)
}

// Slot returns the slot at i, or nil when i is outside the pool.
func (p *SlotPool) Slot(i int) *Slot {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return p.slots[i]
}

// Slots returns every slot in positional order.
func (p *SlotPool) Slots() []*Slot {
	dup := make([]*Slot, len(p.slots))
	copy(dup, p.slots)
	return dup
}

// Assign shows slot i with the product's name and price. The description is
// only written when the product has one.
func (p *SlotPool) Assign(i int, product catalog.Product) bool {
	slot := p.Slot(i)
	if slot == nil {
		return false
	}
	slot.visible = true
	slot.Name.SetText(product.Name)
	slot.Price.SetText(catalog.FormatPrice(product.Price))
	if product.HasDescription() {
		slot.Description.SetText(product.Description)
	}
	return true
}

// Clear hides slot i.
func (p *SlotPool) Clear(i int) bool {
	slot := p.Slot(i)
	if slot == nil {
		return false
	}
	slot.visible = false
	return true
}

// Populate binds products to slots by position and hides the remainder. It
// returns the number of visible slots.
func (p *SlotPool) Populate(products []catalog.Product) int {
	visible := 0
	for i := range p.slots {
		if i < len(products) {
			p.Assign(i, products[i])
			visible++
			continue
		}
		p.Clear(i)
	}
	return visible
}

// SetName updates the name surface of slot i if the slot exists.
func (p *SlotPool) SetName(i int, name string) bool {
	slot := p.Slot(i)
	if slot == nil {
		return false
	}
	slot.Name.SetText(name)
	return true
}

// SetPrice updates the price surface of slot i if the slot exists.
func (p *SlotPool) SetPrice(i int, price float64) bool {
	slot := p.Slot(i)
	if slot == nil {
		return false
	}
	slot.Price.SetText(catalog.FormatPrice(price))
	return true
}

// VisibleCount reports how many slots are currently shown.
func (p *SlotPool) VisibleCount() int {
	n := 0
	for _, slot := range p.slots {
		if slot.visible {
			n++
		}
	}
	return n
}
