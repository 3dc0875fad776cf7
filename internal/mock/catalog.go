// Package mock provides function-field test doubles for Scout's interfaces.
package mock

import (
	"context"
	"sync"

	"github.com/five82/scout/internal/catalog"
)

var _ catalog.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of catalog.Catalog. It records the
// arguments of every call.
type Catalog struct {
	SearchFn  func(ctx context.Context, query string) ([]catalog.Item, error)
	GetItemFn func(ctx context.Context, id string) (catalog.Item, error)

	mu       sync.Mutex
	searches []string
	lookups  []string
}

func (c *Catalog) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	c.mu.Lock()
	c.searches = append(c.searches, query)
	c.mu.Unlock()
	return c.SearchFn(ctx, query)
}

func (c *Catalog) GetItem(ctx context.Context, id string) (catalog.Item, error) {
	c.mu.Lock()
	c.lookups = append(c.lookups, id)
	c.mu.Unlock()
	return c.GetItemFn(ctx, id)
}

// Searches returns the queries Search was called with, in call order.
func (c *Catalog) Searches() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searches...)
}

// Lookups returns the ids GetItem was called with, in call order.
func (c *Catalog) Lookups() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lookups...)
}

// Results builds a SearchFn that answers each query from a fixed table and
// returns no items for anything else.
func Results(table map[string][]catalog.Item) func(context.Context, string) ([]catalog.Item, error) {
	return func(_ context.Context, query string) ([]catalog.Item, error) {
		return table[query], nil
	}
}
