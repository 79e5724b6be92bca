package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hubhand/storefront/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(ViewerMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/featured", handlers.GetFeaturedProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
	})

	return r
}
