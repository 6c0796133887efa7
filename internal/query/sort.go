package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gnstore/internal/domain"
)

// Sort policies accepted by Sort.
const (
	SortName      = "name"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

var nameCollator = collate.New(language.Arabic)

// Sort returns a sorted copy of products. All sorts are stable, so ties
// keep their input order. "newest" orders by id descending (feed ids are
// assigned in insertion order, so the highest id is the most recent).
// "popular" orders by the views field descending; when the feed carries
// no views column every product ties at 0 and the list passes through
// unchanged. Unknown policies return the copy as-is.
func Sort(products []domain.Product, policy string) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch policy {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[j].Name, out[i].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	}
	return out
}
