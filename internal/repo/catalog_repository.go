package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubhand/storefront/internal/models"
)

// CatalogRepository defines read access to the product catalog. Every method
// only ever returns active products. The viewer argument carries the caller's
// identity claims (JSON, possibly empty for anonymous) so the store can apply
// row-level visibility; it is forwarded fresh on every call and never cached.
type CatalogRepository interface {
	// All returns every active product, newest first.
	All(ctx context.Context, viewer string) ([]models.Product, error)
	// ByCategory returns active products in the given category, newest first.
	ByCategory(ctx context.Context, viewer, category string) ([]models.Product, error)
	// Page returns one filtered/sorted page plus the total count of rows
	// matching the filter, independent of the limit/offset range.
	Page(ctx context.Context, viewer string, req PageRequest) ([]models.Product, int, error)
	// ByID returns the active product with the given id, or (nil, nil) when
	// no active row matches. A nil product with nil error is the designated
	// not-found signal; any non-nil error is a data-access failure.
	ByID(ctx context.Context, viewer string, id uuid.UUID) (*models.Product, error)
	// Newest returns at most limit active products, newest first.
	Newest(ctx context.Context, viewer string, limit int) ([]models.Product, error)
}
