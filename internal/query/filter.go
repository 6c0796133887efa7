// Package query holds the pure list operations the storefront runs over
// the in-memory catalog: filtering, sorting and page slicing. Nothing in
// here mutates its input.
package query

import (
	"strings"

	"gnstore/internal/domain"
)

// Filters are applied conjunctively. A zero MinPrice/MaxPrice means the
// bound is unset; both bounds are inclusive when set.
type Filters struct {
	Category    string
	SearchQuery string
	MinPrice    int
	MaxPrice    int
	InStock     bool
}

func (f Filters) matches(p domain.Product) bool {
	if f.SearchQuery != "" {
		term := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

// Filter returns the products passing every active predicate, preserving
// input order.
func Filter(products []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}
