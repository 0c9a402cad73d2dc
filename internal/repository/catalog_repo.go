package repository

import (
	"errors"
	"fmt"

	"github.com/adyen/storefront-ui/internal/models"
)

// ErrProductNotFound is returned when no product has the requested id
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository holds the storefront's products in memory
type CatalogRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewCatalogRepository creates a catalog from products, rejecting invalid or duplicate entries
func NewCatalogRepository(products []models.Product) (*CatalogRepository, error) {
	r := &CatalogRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", p.ID, err)
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}

	return r, nil
}

// All returns every product in catalog order
func (r *CatalogRepository) All() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetProductByID retrieves a product by its id
func (r *CatalogRepository) GetProductByID(id string) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	p := r.products[i]
	return &p, nil
}

// Categories returns the categories in the order they first appear
func (r *CatalogRepository) Categories() []models.Category {
	seen := make(map[string]bool)
	var categories []models.Category
	for _, p := range r.products {
		if !seen[p.Category.Slug] {
			seen[p.Category.Slug] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Brands returns the distinct brands in the order they first appear
func (r *CatalogRepository) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, p := range r.products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}
