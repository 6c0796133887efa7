package query

import (
	"testing"

	"gnstore/internal/domain"
)

func TestSortDoesNotMutateInput(t *testing.T) {
	src := sampleProducts()
	firstID := src[0].ID
	_ = Sort(src, SortPriceAsc)
	if src[0].ID != firstID {
		t.Fatal("Sort mutated its input")
	}
}

func TestSortPrice(t *testing.T) {
	asc := Sort(sampleProducts(), SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Price > asc[i].Price {
			t.Fatalf("price-asc not non-decreasing: %+v", asc)
		}
	}
	desc := Sort(sampleProducts(), SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Price < desc[i].Price {
			t.Fatalf("price-desc not non-increasing: %+v", desc)
		}
	}
}

func TestSortNewestByIDDescending(t *testing.T) {
	got := Sort(sampleProducts(), SortNewest)
	for i := 1; i < len(got); i++ {
		if got[i-1].ID < got[i].ID {
			t.Fatalf("newest must order ids descending: %+v", got)
		}
	}
}

func TestSortPopularByViews(t *testing.T) {
	src := []domain.Product{
		{ID: 1, Name: "أ", Views: 3},
		{ID: 2, Name: "ب", Views: 9},
		{ID: 3, Name: "ج", Views: 1},
	}
	got := Sort(src, SortPopular)
	if got[0].ID != 2 || got[1].ID != 1 || got[2].ID != 3 {
		t.Fatalf("popular must order views descending: %+v", got)
	}
}

func TestSortPopularWithoutViewsIsStablePassThrough(t *testing.T) {
	src := sampleProducts() // no views populated
	got := Sort(src, SortPopular)
	for i := range src {
		if got[i].ID != src[i].ID {
			t.Fatalf("all-zero views must preserve input order: %+v", got)
		}
	}
}

func TestSortNameDescReversesAsc(t *testing.T) {
	asc := Sort(sampleProducts(), SortName)
	desc := Sort(sampleProducts(), SortNameDesc)
	n := len(asc)
	for i := 0; i < n; i++ {
		if asc[i].ID != desc[n-1-i].ID {
			t.Fatalf("name-desc is not the reverse of name:\nasc=%+v\ndesc=%+v", asc, desc)
		}
	}
}

func TestSortUnknownPolicyPassesThrough(t *testing.T) {
	src := sampleProducts()
	got := Sort(src, "bogus")
	for i := range src {
		if got[i].ID != src[i].ID {
			t.Fatalf("unknown policy must not reorder: %+v", got)
		}
	}
}

func TestFilterThenSortPriceBand(t *testing.T) {
	// band filter then price-asc yields a non-decreasing sequence
	// entirely inside the band
	filtered := Filter(sampleProducts(), Filters{MinPrice: 1000, MaxPrice: 50000})
	sorted := Sort(filtered, SortPriceAsc)
	for i, p := range sorted {
		if p.Price < 1000 || p.Price > 50000 {
			t.Fatalf("out of band: %+v", p)
		}
		if i > 0 && sorted[i-1].Price > p.Price {
			t.Fatalf("not non-decreasing: %+v", sorted)
		}
	}
}
