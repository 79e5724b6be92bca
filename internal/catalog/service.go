package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hubhand/storefront/internal/auth"
	"github.com/hubhand/storefront/internal/cache"
	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

// ErrNotConfigured is returned by the primary query paths when the service
// was built without a backing repository. The featured path treats the same
// condition as an empty catalog instead.
var ErrNotConfigured = errors.New("catalog backend is not configured")

const featuredCacheKey = "catalog:featured:v1"

// Service is the catalog query layer. It resolves the viewer identity from
// the request context, forwards it to the repository on every call, and owns
// the error policy: listing and detail queries propagate failures, the
// featured query never does.
type Service struct {
	repo          repo.CatalogRepository
	cache         *cache.Cache
	featuredLimit int
	featuredTTL   time.Duration
}

// NewService builds a Service. cache may be nil, in which case featured
// products are fetched from the repository on every call.
func NewService(r repo.CatalogRepository, c *cache.Cache, featuredLimit int, featuredTTL time.Duration) *Service {
	if featuredLimit <= 0 {
		featuredLimit = 6
	}
	return &Service{repo: r, cache: c, featuredLimit: featuredLimit, featuredTTL: featuredTTL}
}

// FetchAll returns every active product, newest first.
func (s *Service) FetchAll(ctx context.Context) ([]models.Product, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	products, err := s.repo.All(ctx, auth.Viewer(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// FetchByCategory returns active products in one category, newest first.
func (s *Service) FetchByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	products, err := s.repo.ByCategory(ctx, auth.Viewer(ctx), category)
	if err != nil {
		return nil, fmt.Errorf("fetch products for category %q: %w", category, err)
	}
	return products, nil
}

// FetchPage returns one filtered/sorted page plus the total count of active
// rows matching the filter. The total ignores the limit/offset range.
func (s *Service) FetchPage(ctx context.Context, req repo.PageRequest) ([]models.Product, int, error) {
	if s.repo == nil {
		return nil, 0, ErrNotConfigured
	}
	products, total, err := s.repo.Page(ctx, auth.Viewer(ctx), req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch product page: %w", err)
	}
	return products, total, nil
}

// FetchByID returns the active product with the given id, or (nil, nil) when
// none exists. Callers render the nil result as their not-found state.
func (s *Service) FetchByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	product, err := s.repo.ByID(ctx, auth.Viewer(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return product, nil
}

// FetchFeatured returns the newest active products for the landing-page
// section. It never fails: on a missing backend, an unreachable store, or a
// missing relation it logs the cause and returns an empty slice, because an
// empty section is a valid renderable state while a crashed landing page is
// not. Results are cached briefly when a cache is wired in; cache failures
// are suppressed the same way.
func (s *Service) FetchFeatured(ctx context.Context) []models.Product {
	if s.cache != nil {
		var cached []models.Product
		hit, err := s.cache.GetJSON(ctx, featuredCacheKey, &cached)
		if err != nil {
			log.Printf("featured cache read failed: %v", err)
		} else if hit {
			return cached
		}
	}

	if s.repo == nil {
		log.Printf("featured products skipped: %v", ErrNotConfigured)
		return []models.Product{}
	}

	products, err := s.repo.Newest(ctx, auth.Viewer(ctx), s.featuredLimit)
	if err != nil {
		log.Printf("featured products unavailable, rendering empty section: %v", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, featuredCacheKey, products, s.featuredTTL); err != nil {
			log.Printf("featured cache write failed: %v", err)
		}
	}
	return products
}
