package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/repository"
	"github.com/adyen/storefront-ui/internal/services"
)

// RelatedLimit is the number of related products shown on a product page
const RelatedLimit = 4

// ProductData represents the data passed to the product template
type ProductData struct {
	Product  *models.Product
	Related  []models.Product
	SignedIn bool
}

// ProductHandler handles the product page requests
type ProductHandler struct {
	pageHandler
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(renderer *Renderer, catalog services.CatalogService) *ProductHandler {
	return &ProductHandler{pageHandler{renderer: renderer, catalog: catalog}}
}

// ServeHTTP handles the GET /product/{id} request
func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	product, err := h.catalog.GetProduct(chi.URLParam(r, "id"))
	if errors.Is(err, repository.ErrProductNotFound) {
		h.notFound(w, r, "Product not found")
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := ProductData{
		Product:  product,
		Related:  h.catalog.RelatedProducts(product, RelatedLimit),
		SignedIn: SessionFrom(r).IsSignedIn(),
	}
	h.render(w, r, "product", product.Name, data)
}
