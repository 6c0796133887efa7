package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"gnstore/internal/repos"
	"gnstore/internal/services"
)

const feedCSV = "id,name,category,price,description,image_url,stock,featured\n" +
	"1,سماعة بلوتوث JBL,سماعات,25000,صوت نقي,https://img.test/1.jpg,10,true\n" +
	"2,شاحن سريع Samsung,شاحنات,15000,شحن آمن,https://img.test/2.jpg,5,false\n" +
	"3,كيبل USB-C,كيبلات,5000,متين,https://img.test/3.jpg,0,false\n"

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// feedServer serves the CSV feed and counts hits; fail flips it to 500s.
func feedServer(t *testing.T, hits *atomic.Int64, fail *atomic.Bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if fail != nil && fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(feedCSV))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchProductsParsesFeed(t *testing.T) {
	var hits atomic.Int64
	srv := feedServer(t, &hits, nil)
	svc := services.NewCatalogService(srv.URL, repos.NewSlotRepo(memdb(t)))

	products := svc.FetchProducts(context.Background())
	if len(products) != 3 {
		t.Fatalf("want 3 products, got %d", len(products))
	}
	if products[0].ID != 1 || products[0].Price != 25000 {
		t.Fatalf("bad record: %+v", products[0])
	}
}

func TestFetchProductsFreshCacheSkipsNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := feedServer(t, &hits, nil)
	svc := services.NewCatalogService(srv.URL, repos.NewSlotRepo(memdb(t)))

	first := svc.FetchProducts(context.Background())
	second := svc.FetchProducts(context.Background())

	if got := hits.Load(); got != 1 {
		t.Fatalf("second call within freshness window hit the network, hits=%d", got)
	}
	if len(first) != len(second) || &first[0] != &second[0] {
		t.Fatal("fresh cache did not return the identical list")
	}
}

func TestFetchProductsFallsBackToDurableSlot(t *testing.T) {
	var hits atomic.Int64
	var fail atomic.Bool
	srv := feedServer(t, &hits, &fail)
	db := memdb(t)

	// first service instance populates the durable slot
	warm := services.NewCatalogService(srv.URL, repos.NewSlotRepo(db))
	if got := warm.FetchProducts(context.Background()); len(got) != 3 {
		t.Fatalf("warm fetch failed: %d products", len(got))
	}

	// fresh instance, dead feed: the stale durable copy is still served
	fail.Store(true)
	cold := services.NewCatalogService(srv.URL, repos.NewSlotRepo(db))
	products := cold.FetchProducts(context.Background())
	if len(products) != 3 || products[2].Name != "كيبل USB-C" {
		t.Fatalf("durable fallback not served: %+v", products)
	}
}

func TestFetchProductsSyntheticFallback(t *testing.T) {
	var hits atomic.Int64
	var fail atomic.Bool
	fail.Store(true)
	srv := feedServer(t, &hits, &fail)

	svc := services.NewCatalogService(srv.URL, repos.NewSlotRepo(memdb(t)))
	products := svc.FetchProducts(context.Background())

	if len(products) != 150 {
		t.Fatalf("want the 150-item synthetic catalog, got %d", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Fatalf("synthetic ids must be sequential, got %d at %d", p.ID, i)
		}
		if p.Featured != (i < 10) {
			t.Fatalf("first ten synthetic products are featured, got %+v", p)
		}
		if p.Price < 10000 || p.Price > 100000 || p.Stock < 1 || p.Stock > 50 {
			t.Fatalf("synthetic value out of range: %+v", p)
		}
	}
}

func TestClearCacheForcesRefetchAndDropsSlot(t *testing.T) {
	var hits atomic.Int64
	var fail atomic.Bool
	srv := feedServer(t, &hits, &fail)
	svc := services.NewCatalogService(srv.URL, repos.NewSlotRepo(memdb(t)))

	svc.FetchProducts(context.Background())
	svc.ClearCache()
	fail.Store(true)

	// memory and durable copies are gone, so only the synthetic set remains
	products := svc.FetchProducts(context.Background())
	if len(products) != 150 {
		t.Fatalf("want synthetic catalog after ClearCache, got %d products", len(products))
	}
}

func TestDerivedCatalogViews(t *testing.T) {
	var hits atomic.Int64
	srv := feedServer(t, &hits, nil)
	svc := services.NewCatalogService(srv.URL, repos.NewSlotRepo(memdb(t)))
	ctx := context.Background()

	cats := svc.Categories(ctx)
	want := []string{"سماعات", "شاحنات", "كيبلات"}
	if len(cats) != len(want) {
		t.Fatalf("want %d categories, got %v", len(want), cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("category order of first appearance broken: %v", cats)
		}
	}

	if got := svc.ProductsByCategory(ctx, "شاحنات"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("bad category view: %+v", got)
	}

	p, ok := svc.ProductByID(ctx, 3)
	if !ok || p.Name != "كيبل USB-C" {
		t.Fatalf("bad id lookup: %+v ok=%v", p, ok)
	}
	if _, ok := svc.ProductByID(ctx, 99); ok {
		t.Fatal("unknown id must not resolve")
	}

	if got := svc.FeaturedProducts(ctx); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("bad featured view: %+v", got)
	}

	// case-insensitive substring over name/description/category
	if got := svc.Search(ctx, "usb"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("bad search: %+v", got)
	}
	if got := svc.Search(ctx, "سماعات"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("category term should match: %+v", got)
	}
}
