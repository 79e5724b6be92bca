package handlers

import (
	"github.com/hubhand/storefront/internal/catalog"
)

var catalogService *catalog.Service

func SetCatalogService(s *catalog.Service) {
	catalogService = s
}
