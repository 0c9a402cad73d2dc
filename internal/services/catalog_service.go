package services

import (
	"sort"
	"strings"

	"github.com/adyen/storefront-ui/internal/models"
)

// PageSize is the number of product cards per listing page
const PageSize = 9

// Sort orders accepted by ListProducts
const (
	SortNameAsc   = "name,asc"
	SortNameDesc  = "name,desc"
	SortPriceAsc  = "price,asc"
	SortPriceDesc = "price,desc"
)

// CatalogRepository defines the interface for product lookup
type CatalogRepository interface {
	All() []models.Product
	GetProductByID(id string) (*models.Product, error)
	Categories() []models.Category
	Brands() []string
}

// CatalogService handles product listing and lookup
type CatalogService interface {
	ListProducts(opts ListOptions) *ProductListing
	GetProduct(id string) (*models.Product, error)
	RelatedProducts(product *models.Product, limit int) []models.Product
	Categories() []models.Category
	Brands() []string
}

// ListOptions filters, orders and pages a product listing
type ListOptions struct {
	Query    string
	Category string
	Brands   []string
	Sort     string
	Page     int
}

// ProductListing is one page of a product listing
type ProductListing struct {
	Products   []models.Product
	Total      int
	Page       int
	TotalPages int
}

// HasNext returns true if a later page exists
func (l *ProductListing) HasNext() bool {
	return l.Page < l.TotalPages
}

// HasPrevious returns true if an earlier page exists
func (l *ProductListing) HasPrevious() bool {
	return l.Page > 1
}

// NextPage returns the page after the current one
func (l *ProductListing) NextPage() int {
	return l.Page + 1
}

// PreviousPage returns the page before the current one
func (l *ProductListing) PreviousPage() int {
	return l.Page - 1
}

// CatalogServiceImpl implements CatalogService
type CatalogServiceImpl struct {
	catalog CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog CatalogRepository) CatalogService {
	return &CatalogServiceImpl{
		catalog: catalog,
	}
}

// ListProducts returns the page of products matching opts.
// Pages outside the listing are clamped to the first or last page.
func (s *CatalogServiceImpl) ListProducts(opts ListOptions) *ProductListing {
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	brands := make(map[string]bool, len(opts.Brands))
	for _, b := range opts.Brands {
		brands[b] = true
	}

	var matched []models.Product
	for _, p := range s.catalog.All() {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if opts.Category != "" && p.Category.Slug != opts.Category {
			continue
		}
		if len(brands) > 0 && !brands[p.Brand] {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, opts.Sort)

	totalPages := (len(matched) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &ProductListing{
		Products:   matched[start:end],
		Total:      len(matched),
		Page:       page,
		TotalPages: totalPages,
	}
}

func sortProducts(products []models.Product, order string) {
	var less func(a, b models.Product) bool
	switch order {
	case SortNameAsc:
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	case SortNameDesc:
		less = func(a, b models.Product) bool { return a.Name > b.Name }
	case SortPriceAsc:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// GetProduct retrieves a product by id
func (s *CatalogServiceImpl) GetProduct(id string) (*models.Product, error) {
	return s.catalog.GetProductByID(id)
}

// RelatedProducts returns up to limit other products from the same category
func (s *CatalogServiceImpl) RelatedProducts(product *models.Product, limit int) []models.Product {
	var related []models.Product
	for _, p := range s.catalog.All() {
		if len(related) == limit {
			break
		}
		if p.ID != product.ID && p.Category.Slug == product.Category.Slug {
			related = append(related, p)
		}
	}
	return related
}

// Categories returns the storefront categories
func (s *CatalogServiceImpl) Categories() []models.Category {
	return s.catalog.Categories()
}

// Brands returns the brands offered by the catalog
func (s *CatalogServiceImpl) Brands() []string {
	return s.catalog.Brands()
}
