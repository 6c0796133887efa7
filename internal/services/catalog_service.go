package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"gnstore/internal/config"
	"gnstore/internal/domain"
	applog "gnstore/internal/log"
	"gnstore/internal/repos"
)

const (
	catalogSlotKey = "products_cache"
	cacheFreshness = 5 * time.Minute
	feedTimeout    = 10 * time.Second
)

// CatalogService fetches the product feed and keeps two cache layers on
// top of it: a process-local copy with a freshness window, and a durable
// slot that survives restarts. FetchProducts never fails; when the feed
// and the durable slot are both unusable it serves a synthetic catalog.
type CatalogService struct {
	client *http.Client
	slots  *repos.SlotRepo

	mu        sync.Mutex
	feedURL   string
	cached    []domain.Product
	fetchedAt time.Time

	group singleflight.Group

	// Ordered fallback policy, consulted after the fresh in-memory cache
	// misses. The last strategy must always succeed.
	strategies []fetchStrategy
}

type fetchStrategy struct {
	name string
	fn   func(ctx context.Context) ([]domain.Product, error)
}

func NewCatalogService(feedURL string, slots *repos.SlotRepo) *CatalogService {
	s := &CatalogService{
		client:  &http.Client{Timeout: feedTimeout},
		slots:   slots,
		feedURL: feedURL,
	}
	s.strategies = []fetchStrategy{
		{name: "feed", fn: s.fetchFeed},
		{name: "durable", fn: s.readDurable},
		{name: "synthetic", fn: s.synthetic},
	}
	return s
}

// FetchProducts returns the current catalog. Within the freshness window
// the in-memory copy is returned as-is with no network call; callers must
// treat the list as read-only. Outside the window the fallback strategies
// run in order, and concurrent callers share one in-flight fetch.
func (s *CatalogService) FetchProducts(ctx context.Context) []domain.Product {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < cacheFreshness {
		products := s.cached
		s.mu.Unlock()
		return products
	}
	s.mu.Unlock()

	v, _, _ := s.group.Do("catalog", func() (any, error) {
		return s.fetchUncached(ctx), nil
	})
	return v.([]domain.Product)
}

func (s *CatalogService) fetchUncached(ctx context.Context) []domain.Product {
	for _, st := range s.strategies {
		products, err := st.fn(ctx)
		if err != nil {
			applog.Warn(nil, "catalog.fetch."+st.name, err, nil)
			continue
		}
		applog.Info(nil, "catalog.fetch."+st.name, map[string]any{"count": len(products)})
		return products
	}
	// unreachable while the synthetic strategy is last
	return nil
}

// fetchFeed pulls and parses the CSV export, then mirrors the result into
// both cache layers. Only a real feed success refreshes the in-memory
// timestamp, so a fallback result never suppresses the next retry.
func (s *CatalogService) fetchFeed(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	feedURL := s.feedURL
	s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	products := parseCatalogCSV(string(body))
	now := time.Now()

	s.mu.Lock()
	s.cached = products
	s.fetchedAt = now
	s.mu.Unlock()

	snap := domain.CatalogSnapshot{Products: products, Timestamp: now.UnixMilli()}
	if b, err := json.Marshal(snap); err == nil {
		if err := s.slots.Set(catalogSlotKey, string(b)); err != nil {
			applog.Error(nil, "catalog.slot.write", err, nil)
		}
	}
	return products, nil
}

// readDurable is a best-effort fallback: the stored snapshot is served
// regardless of its age.
func (s *CatalogService) readDurable(_ context.Context) ([]domain.Product, error) {
	value, ok, err := s.slots.Get(catalogSlotKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("durable catalog slot is empty")
	}
	var snap domain.CatalogSnapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return nil, err
	}
	return snap.Products, nil
}

func (s *CatalogService) synthetic(_ context.Context) ([]domain.Product, error) {
	return syntheticCatalog(), nil
}

// ClearCache invalidates both cache layers. The cart is not touched.
func (s *CatalogService) ClearCache() {
	s.mu.Lock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
	if err := s.slots.Delete(catalogSlotKey); err != nil {
		applog.Error(nil, "catalog.slot.delete", err, nil)
	}
}

// SetSheetID points the adapter at another spreadsheet and drops the
// in-memory cache so the next fetch hits the new feed.
func (s *CatalogService) SetSheetID(sheetID string) {
	s.mu.Lock()
	s.feedURL = config.FeedURLFor(sheetID)
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}

// Categories lists distinct categories in order of first appearance.
func (s *CatalogService) Categories(ctx context.Context) []string {
	products := s.FetchProducts(ctx)
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) []domain.Product {
	var out []domain.Product
	for _, p := range s.FetchProducts(ctx) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) ProductByID(ctx context.Context, id int) (domain.Product, bool) {
	for _, p := range s.FetchProducts(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogService) FeaturedProducts(ctx context.Context) []domain.Product {
	var out []domain.Product
	for _, p := range s.FetchProducts(ctx) {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query case-insensitively against name, description
// and category.
func (s *CatalogService) Search(ctx context.Context, query string) []domain.Product {
	term := strings.ToLower(query)
	var out []domain.Product
	for _, p := range s.FetchProducts(ctx) {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}
