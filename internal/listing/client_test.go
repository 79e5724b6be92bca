package listing

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hubhand/storefront/internal/catalog"
	"github.com/hubhand/storefront/internal/http/handlers"
	"github.com/hubhand/storefront/internal/repo"

	api "github.com/hubhand/storefront/internal/http"
)

// startCatalogServer serves the real router over an in-memory catalog so the
// client and controller are exercised end to end.
func startCatalogServer(t *testing.T) (*httptest.Server, *repo.InMemoryCatalogRepository) {
	t.Helper()
	catalogRepo := repo.NewInMemoryCatalogRepository()
	handlers.SetCatalogService(catalog.NewService(catalogRepo, nil, 6, time.Minute))

	srv := httptest.NewServer(api.NewRouter())
	t.Cleanup(srv.Close)
	return srv, catalogRepo
}

func TestClientDrivesControllerThroughPages(t *testing.T) {
	srv, catalogRepo := startCatalogServer(t)
	for _, p := range datasetOf(30) {
		catalogRepo.Add(p)
	}

	client := NewClient(srv.URL)
	firstPage, total, err := client.FetchPage(context.Background(), "", repo.SortNewest, 12, 0)
	if err != nil {
		t.Fatalf("first page fetch failed: %v", err)
	}
	if len(firstPage) != 12 || total != 30 {
		t.Fatalf("expected 12/30, got %d/%d", len(firstPage), total)
	}

	c := NewController(client, "", repo.SortNewest, 12)
	c.Initialize(firstPage, total)

	for c.HasMore() {
		if err := c.LoadMore(context.Background()); err != nil {
			t.Fatalf("LoadMore failed: %v", err)
		}
	}

	items := c.Items()
	if len(items) != 30 {
		t.Fatalf("expected all 30 items accumulated, got %d", len(items))
	}
	// Disjoint offsets must not produce duplicates.
	seen := map[string]bool{}
	for _, p := range items {
		if seen[p.ID.String()] {
			t.Fatalf("duplicate product %s in accumulated items", p.ID)
		}
		seen[p.ID.String()] = true
	}
	// Newest-first ordering must hold across page boundaries.
	for i := 1; i < len(items); i++ {
		if items[i-1].CreatedAt.Before(items[i].CreatedAt) {
			t.Fatalf("accumulated items out of order at %d", i)
		}
	}
}

func TestClientFetchPageWithCategoryAndSort(t *testing.T) {
	srv, catalogRepo := startCatalogServer(t)
	category := "books"
	for i, p := range datasetOf(8) {
		if i%2 == 0 {
			p.Category = &category
		}
		catalogRepo.Add(p)
	}

	client := NewClient(srv.URL)
	products, total, err := client.FetchPage(context.Background(), "books", repo.SortPriceAsc, 12, 0)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if total != 4 || len(products) != 4 {
		t.Fatalf("expected 4 books, got %d/%d", len(products), total)
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].Price.Cmp(products[i].Price) > 0 {
			t.Fatalf("prices out of order at %d", i)
		}
	}
	for _, p := range products {
		if p.Category == nil || *p.Category != "books" {
			t.Fatalf("product %q outside requested category", p.Name)
		}
	}
}

func TestClientSurfacesServerError(t *testing.T) {
	srv, catalogRepo := startCatalogServer(t)
	catalogRepo.FailWith(errors.New("relation missing"))

	client := NewClient(srv.URL)
	_, _, err := client.FetchPage(context.Background(), "", repo.SortNewest, 12, 0)
	if err == nil {
		t.Fatal("expected error from failing backend")
	}

	c := NewController(client, "", repo.SortNewest, 12)
	c.Initialize(datasetOf(12), 30)
	if err := c.LoadMore(context.Background()); err == nil {
		t.Fatal("expected LoadMore to surface the server error")
	}
	if got := len(c.Items()); got != 12 {
		t.Fatalf("items changed on failed load: %d", got)
	}
}

func TestClientForwardsBearerToken(t *testing.T) {
	srv, catalogRepo := startCatalogServer(t)
	for _, p := range datasetOf(3) {
		catalogRepo.Add(p)
	}

	client := NewClient(srv.URL)
	// Unsigned-garbage tokens are transported, not validated; the request
	// must still succeed as an anonymous viewer.
	client.Token = "not-a-jwt"
	products, total, err := client.FetchPage(context.Background(), "", repo.SortNewest, 12, 0)
	if err != nil {
		t.Fatalf("fetch with opaque token failed: %v", err)
	}
	if len(products) != 3 || total != 3 {
		t.Fatalf("expected 3/3, got %d/%d", len(products), total)
	}
}
