package state

import "github.com/atomicstack/catalog-sync/internal/catalog"

// CatalogStore holds the ordered product list from the last successful fetch.
type CatalogStore interface {
	Entries() []catalog.Product
	Replace([]catalog.Product)
	Loaded() bool
	Len() int
	At(int) (catalog.Product, bool)
	SetName(int, string) bool
	SetPrice(int, float64) bool
}

type catalogStore struct {
	entries []catalog.Product
	loaded  bool
}

func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Entries() []catalog.Product {
	return catalog.Clone(s.entries)
}

// Replace swaps the whole list; callers never merge fetch results.
func (s *catalogStore) Replace(entries []catalog.Product) {
	s.entries = catalog.Clone(entries)
	s.loaded = true
}

func (s *catalogStore) Loaded() bool {
	return s.loaded
}

func (s *catalogStore) Len() int {
	return len(s.entries)
}

func (s *catalogStore) At(i int) (catalog.Product, bool) {
	if i < 0 || i >= len(s.entries) {
		return catalog.Product{}, false
	}
	return s.entries[i], true
}

func (s *catalogStore) SetName(i int, name string) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries[i].Name = name
	return true
}

func (s *catalogStore) SetPrice(i int, price float64) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries[i].Price = price
	return true
}
