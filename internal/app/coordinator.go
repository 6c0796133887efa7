// Package app owns the single mutable application state and the closed
// set of actions that may replace it. The Coordinator is created once in
// main and handed to consumers; there is no package-level state.
package app

import (
	"context"
	"sync"

	"gnstore/internal/domain"
	"gnstore/internal/query"
)

const defaultPageSize = 60

// Catalog is what the coordinator needs from the catalog source adapter.
type Catalog interface {
	FetchProducts(ctx context.Context) []domain.Product
	Categories(ctx context.Context) []string
}

// Cart is the command interface to the cart store. Every mutator returns
// the full updated list, which the coordinator adopts as the only cart
// truth — the state never drifts from the store.
type Cart interface {
	Add(p domain.Product, quantity int) []domain.CartItem
	Remove(productID int) []domain.CartItem
	SetQuantity(productID, quantity int) []domain.CartItem
	Clear() []domain.CartItem
	Items() []domain.CartItem
}

// State is the full application snapshot. Actions replace it wholesale;
// no handler ever writes a field in place.
type State struct {
	Products        []domain.Product
	Categories      []string
	Cart            []domain.CartItem
	Loading         bool
	Err             string
	CurrentCategory string
	SearchQuery     string
	Filters         query.Filters
	SortBy          string
	Page            int
	PageSize        int
}

type Coordinator struct {
	catalog Catalog
	cart    Cart

	mu    sync.Mutex
	state State
}

func NewCoordinator(catalog Catalog, cart Cart) *Coordinator {
	return &Coordinator{
		catalog: catalog,
		cart:    cart,
		state: State{
			SortBy:   query.SortName,
			Page:     1,
			PageSize: defaultPageSize,
		},
	}
}

// replace swaps in a new state built from the current one. Each action
// either completes fully or leaves the prior state untouched.
func (c *Coordinator) replace(mutate func(State) State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = mutate(c.state)
}

// Load runs the one startup fetch: catalog, derived categories, and the
// cart snapshot. The catalog adapter owns all retry/fallback behavior, so
// Load itself never fails and never retries.
func (c *Coordinator) Load(ctx context.Context) {
	c.replace(func(s State) State {
		s.Loading = true
		return s
	})

	products := c.catalog.FetchProducts(ctx)
	categories := c.catalog.Categories(ctx)
	items := c.cart.Items()

	c.replace(func(s State) State {
		s.Products = products
		s.Categories = categories
		s.Cart = items
		s.Loading = false
		s.Err = ""
		return s
	})
}

func (c *Coordinator) SetError(msg string) {
	c.replace(func(s State) State {
		s.Err = msg
		s.Loading = false
		return s
	})
}

// Narrowing actions reset the page so the new result set starts at its
// first window.

func (c *Coordinator) SetCategory(category string) {
	c.replace(func(s State) State {
		s.CurrentCategory = category
		s.Filters.Category = category
		s.Page = 1
		return s
	})
}

func (c *Coordinator) SetSearchQuery(q string) {
	c.replace(func(s State) State {
		s.SearchQuery = q
		s.Filters.SearchQuery = q
		s.Page = 1
		return s
	})
}

func (c *Coordinator) SetFilters(f query.Filters) {
	c.replace(func(s State) State {
		s.Filters = f
		s.CurrentCategory = f.Category
		s.SearchQuery = f.SearchQuery
		s.Page = 1
		return s
	})
}

func (c *Coordinator) SetSort(policy string) {
	c.replace(func(s State) State {
		s.SortBy = policy
		s.Page = 1
		return s
	})
}

func (c *Coordinator) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.replace(func(s State) State {
		s.Page = page
		return s
	})
}

func (c *Coordinator) AddToCart(p domain.Product, quantity int) {
	items := c.cart.Add(p, quantity)
	c.replace(func(s State) State {
		s.Cart = items
		return s
	})
}

func (c *Coordinator) RemoveFromCart(productID int) {
	items := c.cart.Remove(productID)
	c.replace(func(s State) State {
		s.Cart = items
		return s
	})
}

func (c *Coordinator) UpdateQuantity(productID, quantity int) {
	items := c.cart.SetQuantity(productID, quantity)
	c.replace(func(s State) State {
		s.Cart = items
		return s
	})
}

func (c *Coordinator) ClearCart() {
	items := c.cart.Clear()
	c.replace(func(s State) State {
		s.Cart = items
		return s
	})
}

// Snapshot returns a copy of the current state. Slices are shared but
// treated as read-only throughout the app.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentPage runs the query layer over the snapshot: filter, sort, then
// slice the active page window.
func (c *Coordinator) CurrentPage() query.Page {
	s := c.Snapshot()
	filtered := query.Filter(s.Products, s.Filters)
	sorted := query.Sort(filtered, s.SortBy)
	return query.Paginate(sorted, s.Page, s.PageSize)
}

// PageFor answers one read with explicit parameters instead of the shared
// filter state, so concurrent readers cannot observe each other's
// narrowing. The catalog refresh still flows through the coordinator's
// products snapshot; the adapter's freshness window makes it a cache hit
// in the common case. An empty sort policy means the default, not
// whatever the previous caller set.
func (c *Coordinator) PageFor(ctx context.Context, f query.Filters, sortBy string, page int) query.Page {
	products := c.catalog.FetchProducts(ctx)

	c.mu.Lock()
	s := c.state
	s.Products = products
	c.state = s
	size := s.PageSize
	c.mu.Unlock()

	if sortBy == "" {
		sortBy = query.SortName
	}
	sorted := query.Sort(query.Filter(products, f), sortBy)
	return query.Paginate(sorted, page, size)
}
