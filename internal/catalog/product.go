// Package catalog holds the product domain types, the HTTP client used to
// fetch the remote catalog, and the error kinds surfaced to the user.
package catalog

// DefaultEndpoint is the product listing queried when no endpoint is configured.
const DefaultEndpoint = "https://homework.mocart.io/api/products"

// Product is a single catalog entry. Identity is the position in the fetched
// list; the server does not assign ids.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// HasDescription reports whether the product carries a non-empty description.
func (p Product) HasDescription() bool {
	return p.Description != ""
}

// payload mirrors the response body of the product listing.
type payload struct {
	Products *[]Product `json:"products"`
}

// Clone returns a copy of the provided products.
func Clone(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}
