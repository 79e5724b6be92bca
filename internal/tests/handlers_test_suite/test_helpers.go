package handlers_test_suite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubhand/storefront/internal/catalog"
	"github.com/hubhand/storefront/internal/http/handlers"
	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

var catalogRepo *repo.InMemoryCatalogRepository

func init() {
	catalogRepo = repo.NewInMemoryCatalogRepository()
	handlers.SetCatalogService(catalog.NewService(catalogRepo, nil, 6, time.Minute))
}

func clearCatalog() {
	catalogRepo.Clear()
}

// seedProducts adds n active products with ascending prices and creation
// times, optionally in a category, and returns them in insertion order.
func seedProducts(n int, category string) []models.Product {
	base := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, n)
	for i := range products {
		p := models.Product{
			ID:            uuid.New(),
			Name:          fmt.Sprintf("Product %02d", i),
			Price:         decimal.NewFromInt(int64(10 + i)),
			StockQuantity: 3,
			IsActive:      true,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if category != "" {
			c := category
			p.Category = &c
		}
		catalogRepo.Add(p)
		products[i] = p
	}
	return products
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
