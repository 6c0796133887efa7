package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"gnstore/internal/app"
	"gnstore/internal/query"
	"gnstore/internal/repos"
	"gnstore/internal/services"
)

const feedCSV = "id,name,category,price,description,image_url,stock,featured\n" +
	"1,سماعة بلوتوث JBL,سماعات,25000,صوت نقي,https://img.test/1.jpg,10,true\n" +
	"2,شاحن سريع Samsung,شاحنات,15000,شحن آمن,https://img.test/2.jpg,5,false\n" +
	"3,كيبل USB-C,كيبلات,5000,متين,https://img.test/3.jpg,0,false\n"

func newCoordinator(t *testing.T) (*app.Coordinator, *services.CartService, *services.CatalogService) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(feedCSV))
	}))
	t.Cleanup(srv.Close)

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	slots := repos.NewSlotRepo(db)
	catalog := services.NewCatalogService(srv.URL, slots)
	cart := services.NewCartService(slots)
	return app.NewCoordinator(catalog, cart), cart, catalog
}

func TestLoadPopulatesState(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	coord.Load(context.Background())

	s := coord.Snapshot()
	if len(s.Products) != 3 {
		t.Fatalf("want 3 products, got %d", len(s.Products))
	}
	if len(s.Categories) != 3 {
		t.Fatalf("want 3 derived categories, got %v", s.Categories)
	}
	if s.Loading || s.Err != "" {
		t.Fatalf("load must finish clean: %+v", s)
	}
	if s.Page != 1 || s.SortBy != query.SortName {
		t.Fatalf("bad initial paging state: %+v", s)
	}
}

func TestNarrowingActionsResetPage(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	coord.Load(context.Background())

	coord.SetPage(3)
	coord.SetSearchQuery("سماعة")
	if s := coord.Snapshot(); s.Page != 1 || s.Filters.SearchQuery != "سماعة" {
		t.Fatalf("search must reset the page: %+v", s)
	}

	coord.SetPage(2)
	coord.SetCategory("سماعات")
	if s := coord.Snapshot(); s.Page != 1 || s.Filters.Category != "سماعات" {
		t.Fatalf("category must reset the page: %+v", s)
	}

	coord.SetPage(2)
	coord.SetSort(query.SortPriceAsc)
	if s := coord.Snapshot(); s.Page != 1 || s.SortBy != query.SortPriceAsc {
		t.Fatalf("sort must reset the page: %+v", s)
	}
}

func TestCartActionsMirrorStoreReturnValue(t *testing.T) {
	coord, cart, _ := newCoordinator(t)
	coord.Load(context.Background())
	s := coord.Snapshot()

	coord.AddToCart(s.Products[0], 2)
	coord.AddToCart(s.Products[1], 1)
	if got := coord.Snapshot().Cart; len(got) != 2 || got[0].Quantity != 2 {
		t.Fatalf("cart mirror out of sync after add: %+v", got)
	}

	coord.UpdateQuantity(s.Products[0].ID, 0)
	if got := coord.Snapshot().Cart; len(got) != 1 || got[0].ID != s.Products[1].ID {
		t.Fatalf("update-to-zero must remove the line in the mirror: %+v", got)
	}

	// the mirror always equals what the store itself reports
	if store, mirror := cart.Items(), coord.Snapshot().Cart; len(store) != len(mirror) {
		t.Fatalf("mirror drifted from store: store=%+v mirror=%+v", store, mirror)
	}

	coord.ClearCart()
	if got := coord.Snapshot().Cart; len(got) != 0 {
		t.Fatalf("clear must empty the mirror: %+v", got)
	}
	if cart.Total() != 0 {
		t.Fatalf("store not cleared: %d", cart.Total())
	}
}

func TestCurrentPageAppliesQueryPipeline(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	coord.Load(context.Background())

	coord.SetFilters(query.Filters{MinPrice: 1000, MaxPrice: 30000})
	coord.SetSort(query.SortPriceAsc)
	page := coord.CurrentPage()

	if len(page.Items) != 3 {
		t.Fatalf("want 3 products in band, got %d", len(page.Items))
	}
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i-1].Price > page.Items[i].Price {
			t.Fatalf("not sorted price-asc: %+v", page.Items)
		}
	}
	if page.TotalPages != 1 || page.HasNext {
		t.Fatalf("bad page shape: %+v", page)
	}
}

func TestPageForIgnoresSharedFilterState(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	coord.Load(context.Background())

	// simulate another caller narrowing the shared state
	coord.SetCategory("سماعات")
	coord.SetSort(query.SortPriceDesc)
	coord.SetPage(2)

	page := coord.PageFor(context.Background(), query.Filters{}, "", 1)
	if len(page.Items) != 3 {
		t.Fatalf("explicit empty filter must see the whole catalog, got %d items", len(page.Items))
	}
	// empty sort means the default name order, not the last caller's policy
	if page.Items[0].ID != 1 {
		t.Fatalf("want name-ordered head (id 1), got %+v", page.Items[0])
	}
	if page.Number != 1 {
		t.Fatalf("explicit page 1 must not inherit the shared page: %d", page.Number)
	}
}

func TestSetErrorLeavesRestOfStateIntact(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	coord.Load(context.Background())
	before := coord.Snapshot()

	coord.SetError("feed unreachable")
	after := coord.Snapshot()
	if after.Err != "feed unreachable" || after.Loading {
		t.Fatalf("bad error state: %+v", after)
	}
	if len(after.Products) != len(before.Products) || after.Page != before.Page {
		t.Fatalf("error action must not touch other fields: %+v", after)
	}
}
