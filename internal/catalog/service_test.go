package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

func seededService(t *testing.T, n int) (*Service, *repo.InMemoryCatalogRepository) {
	t.Helper()
	r := repo.NewInMemoryCatalogRepository()
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		r.Add(models.Product{
			ID:            uuid.New(),
			Name:          "Item",
			Price:         decimal.NewFromInt(int64(i + 1)),
			StockQuantity: 1,
			IsActive:      true,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:     base.Add(time.Duration(i) * time.Hour),
		})
	}
	return NewService(r, nil, 6, time.Minute), r
}

func TestFetchFeaturedSuppressesFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unreachable backend", errors.New("dial tcp: connection refused")},
		{"missing relation", errors.New(`ERROR: relation "products" does not exist (SQLSTATE 42P01)`)},
		{"permission denied", errors.New("permission denied for table products")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := seededService(t, 10)
			r.FailWith(tt.err)

			products := svc.FetchFeatured(context.Background())
			if products == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(products) != 0 {
				t.Fatalf("expected no products, got %d", len(products))
			}
		})
	}
}

func TestFetchFeaturedWithoutBackend(t *testing.T) {
	svc := NewService(nil, nil, 6, time.Minute)
	products := svc.FetchFeatured(context.Background())
	if len(products) != 0 {
		t.Fatalf("expected empty featured section, got %d products", len(products))
	}
}

func TestFetchFeaturedBoundsResult(t *testing.T) {
	svc, _ := seededService(t, 10)
	products := svc.FetchFeatured(context.Background())
	if len(products) != 6 {
		t.Fatalf("expected 6 featured products, got %d", len(products))
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].CreatedAt.Before(products[i].CreatedAt) {
			t.Fatalf("featured products not newest-first at %d", i)
		}
	}
}

func TestFetchPagePropagatesFailures(t *testing.T) {
	svc, r := seededService(t, 10)
	backendErr := errors.New("connection reset by peer")
	r.FailWith(backendErr)

	if _, _, err := svc.FetchPage(context.Background(), repo.PageRequest{Limit: 12}); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error to surface, got %v", err)
	}
	if _, err := svc.FetchAll(context.Background()); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error from FetchAll, got %v", err)
	}
	if _, err := svc.FetchByCategory(context.Background(), "books"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error from FetchByCategory, got %v", err)
	}
	if _, err := svc.FetchByID(context.Background(), uuid.New()); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error from FetchByID, got %v", err)
	}
}

func TestPrimaryPathsRequireBackend(t *testing.T) {
	svc := NewService(nil, nil, 6, time.Minute)

	if _, _, err := svc.FetchPage(context.Background(), repo.PageRequest{Limit: 12}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := svc.FetchByID(context.Background(), uuid.New()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFetchByIDNotFoundIsNil(t *testing.T) {
	svc, _ := seededService(t, 3)
	product, err := svc.FetchByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("missing product must not error: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for missing product, got %v", product)
	}
}
