package http

import (
	"net/http"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
)

type ProductHandler struct {
	catalog catalog.Catalog
}

func NewProductHandler(c catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// ListProducts serves the product listing, optionally filtered by ?category=.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = domain.CategoryAll
	}
	if !category.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_category", "category must be one of all, gpu, mobo, periph")
		return
	}

	products := h.catalog.List(category)
	out := make([]ProductDTO, len(products))
	for i, p := range products {
		out[i] = convertProduct(p)
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	p, found := h.catalog.Lookup(productID)
	if !found {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, convertProduct(p))
}
