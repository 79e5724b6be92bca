package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

// GetProductsHandler godoc
// @Summary List active products, filtered, sorted and paginated
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Param sort query string false "Sort option (newest, oldest, price_asc, price_desc, name_asc)"
// @Param limit query int false "Page size (default 12)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} ProductsResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := repo.PageRequest{
		Category: q.Get("category"),
		Sort:     repo.ParseSortOption(q.Get("sort")),
		Limit:    parseIntDefault(q.Get("limit"), repo.DefaultPageSize),
		Offset:   parseIntDefault(q.Get("offset"), 0),
	}

	products, total, err := catalogService.FetchPage(r.Context(), req)
	if err != nil {
		log.Printf("product page query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, ProductsResult{Products: products, Total: total})
}

// GetProductByIDHandler godoc
// @Summary Get one active product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := catalogService.FetchByID(r.Context(), id)
	if err != nil {
		log.Printf("product detail query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetFeaturedProductsHandler godoc
// @Summary Newest active products for the landing page
// @Tags products
// @Produce json
// @Success 200 {object} FeaturedResult
// @Router /api/products/featured [get]
func GetFeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := catalogService.FetchFeatured(r.Context())
	writeJSON(w, http.StatusOK, FeaturedResult{Products: products})
}

// GetCategoriesHandler godoc
// @Summary Storefront category reference list
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Categories())
}
