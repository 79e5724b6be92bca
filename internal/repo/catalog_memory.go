package repo

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hubhand/storefront/internal/models"
)

// InMemoryCatalogRepository is an in-memory implementation of
// CatalogRepository used by tests. It applies the same active-only filter,
// ordering, and range semantics as the Postgres implementation. A forced
// error can be injected to simulate a failing backend.
type InMemoryCatalogRepository struct {
	products []models.Product
	err      error
}

func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{products: []models.Product{}}
}

// Add stores a product. Inactive products are kept so tests can verify
// they never surface through query methods.
func (r *InMemoryCatalogRepository) Add(p models.Product) {
	r.products = append(r.products, p)
}

// FailWith makes every subsequent call return err. Pass nil to heal.
func (r *InMemoryCatalogRepository) FailWith(err error) {
	r.err = err
}

func (r *InMemoryCatalogRepository) Clear() {
	r.products = []models.Product{}
	r.err = nil
}

func (r *InMemoryCatalogRepository) All(ctx context.Context, viewer string) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	matched := r.matching("")
	sortProducts(matched, SortNewest)
	return matched, nil
}

func (r *InMemoryCatalogRepository) ByCategory(ctx context.Context, viewer, category string) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	matched := r.matching(category)
	sortProducts(matched, SortNewest)
	return matched, nil
}

func (r *InMemoryCatalogRepository) Page(ctx context.Context, viewer string, req PageRequest) ([]models.Product, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	req = req.normalized()

	matched := r.matching(req.Category)
	sortProducts(matched, req.Sort)
	total := len(matched)

	start := clamp(req.Offset, 0, total)
	end := clamp(start+req.Limit, start, total)
	return matched[start:end], total, nil
}

func (r *InMemoryCatalogRepository) ByID(ctx context.Context, viewer string, id uuid.UUID) (*models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id && p.IsActive {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryCatalogRepository) Newest(ctx context.Context, viewer string, limit int) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	matched := r.matching("")
	sortProducts(matched, SortNewest)
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *InMemoryCatalogRepository) matching(category string) []models.Product {
	var matched []models.Product
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if category != "" && (p.Category == nil || *p.Category != category) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func sortProducts(products []models.Product, by SortOption) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch by {
		case SortPriceAsc:
			return a.Price.Cmp(b.Price) < 0
		case SortPriceDesc:
			return a.Price.Cmp(b.Price) > 0
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortNameAsc:
			return a.Name < b.Name
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
