package listing

import (
	"context"
	"fmt"

	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

// PageFetcher is the request/response boundary the controller loads pages
// through. Client is the HTTP implementation; tests substitute fakes.
type PageFetcher interface {
	FetchPage(ctx context.Context, category string, sort repo.SortOption, limit, offset int) ([]models.Product, int, error)
}

// Controller accumulates pages of products for a single browsing context,
// one (category, sort) combination. It is single-consumer cooperative state:
// one logical task drives it at a time, so re-entry is fenced by the pending
// flag rather than a lock. When the browsing context changes the host throws
// the instance away and builds a new one.
type Controller struct {
	fetcher   PageFetcher
	category  string
	sort      repo.SortOption
	increment int

	items     []models.Product
	total     int
	requested int
	pending   bool
}

// NewController builds a controller for one browsing context. increment is
// the fixed page size added per LoadMore; non-positive values use the
// catalog default.
func NewController(fetcher PageFetcher, category string, sort repo.SortOption, increment int) *Controller {
	if increment <= 0 {
		increment = repo.DefaultPageSize
	}
	return &Controller{fetcher: fetcher, category: category, sort: sort, increment: increment}
}

// Initialize seeds the controller with the first page, fetched by the host
// before the controller existed. Called once per browsing context.
func (c *Controller) Initialize(products []models.Product, total int) {
	c.items = append([]models.Product(nil), products...)
	c.total = total
	c.requested = len(products)
	c.pending = false
}

// HasMore reports whether the backend holds rows beyond what is loaded.
func (c *Controller) HasMore() bool {
	return len(c.items) < c.total
}

// Pending reports whether a load is in flight.
func (c *Controller) Pending() bool {
	return c.pending
}

// Total returns the last known total for the active filter.
func (c *Controller) Total() int {
	return c.total
}

// RequestedCount returns the cumulative number of products requested so far.
func (c *Controller) RequestedCount() int {
	return c.requested
}

// Items returns an immutable snapshot of the accumulated products. Each
// successful load produces a strictly longer snapshot; callers re-render
// from the snapshot rather than mutating it.
func (c *Controller) Items() []models.Product {
	return append([]models.Product(nil), c.items...)
}

// LoadMore fetches the next increment at offset len(items). It is a no-op
// while a load is pending or when nothing remains, so rapid repeated
// invocations issue at most one request. On failure the accumulated state is
// untouched and the error is returned for the host to surface; pending is
// cleared either way so a retry can follow.
func (c *Controller) LoadMore(ctx context.Context) error {
	if c.pending || !c.HasMore() {
		return nil
	}
	c.pending = true
	defer func() { c.pending = false }()

	products, total, err := c.fetcher.FetchPage(ctx, c.category, c.sort, c.increment, len(c.items))
	if err != nil {
		return fmt.Errorf("load more products: %w", err)
	}

	// Disjoint offsets yield disjoint rows, so a plain append keeps order
	// without de-duplication.
	c.items = append(c.items, products...)
	c.total = total
	c.requested += c.increment
	return nil
}
