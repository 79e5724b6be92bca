package handlers

import (
	"github.com/hubhand/storefront/internal/models"
)

// ProductsResult is the paginated listing payload: one page of products plus
// the total count of rows matching the filter, independent of the page range.
type ProductsResult struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// FeaturedResult carries the landing-page featured section. It is always
// served with status 200; an empty list is a valid renderable state.
type FeaturedResult struct {
	Products []models.Product `json:"products"`
}

// ErrorResponse is the JSON error envelope. The message is user-facing, not
// a literal error dump.
type ErrorResponse struct {
	Error string `json:"error"`
}
