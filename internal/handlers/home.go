package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/services"
)

// SortOption is one entry of the sort dropdown
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// BrandOption is one brand filter checkbox
type BrandOption struct {
	Name    string
	Checked bool
}

// HomeData represents the data passed to the home template
type HomeData struct {
	Heading     string
	Query       string
	Listing     *services.ProductListing
	SortOptions []SortOption
	Brands      []BrandOption
	Categories  []models.Category
	NextURL     string
	PreviousURL string
}

// HomeHandler renders product listings: the home page, search results and category pages
type HomeHandler struct {
	pageHandler
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(renderer *Renderer, catalog services.CatalogService) *HomeHandler {
	return &HomeHandler{pageHandler{renderer: renderer, catalog: catalog}}
}

// ServeHTTP handles GET /, /search and /category/{slug}
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	opts := services.ListOptions{
		Query:    query.Get("q"),
		Category: chi.URLParam(r, "slug"),
		Brands:   query["brand"],
		Sort:     query.Get("sort"),
	}
	opts.Page, _ = strconv.Atoi(query.Get("page"))

	title, heading := "", "Products"
	switch {
	case opts.Category != "":
		category, ok := h.findCategory(opts.Category)
		if !ok {
			h.notFound(w, r, "Unknown category "+opts.Category)
			return
		}
		title, heading = category.Name, "Category: "+category.Name
	case r.URL.Path == "/search":
		title, heading = "Search", "Searched for: "+opts.Query
	}

	listing := h.catalog.ListProducts(opts)
	data := HomeData{
		Heading:     heading,
		Query:       opts.Query,
		Listing:     listing,
		SortOptions: sortOptions(opts.Sort),
		Brands:      h.brandOptions(opts.Brands),
		Categories:  h.catalog.Categories(),
	}
	if listing.HasNext() {
		data.NextURL = pageURL(r.URL, listing.NextPage())
	}
	if listing.HasPrevious() {
		data.PreviousURL = pageURL(r.URL, listing.PreviousPage())
	}

	h.render(w, r, "home", title, data)
}

func (h *HomeHandler) findCategory(slug string) (models.Category, bool) {
	for _, c := range h.catalog.Categories() {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (h *HomeHandler) brandOptions(selected []string) []BrandOption {
	checked := make(map[string]bool, len(selected))
	for _, b := range selected {
		checked[b] = true
	}

	var options []BrandOption
	for _, b := range h.catalog.Brands() {
		options = append(options, BrandOption{Name: b, Checked: checked[b]})
	}
	return options
}

func sortOptions(current string) []SortOption {
	options := []SortOption{
		{Value: "", Label: "Sort"},
		{Value: services.SortNameAsc, Label: "Name (A - Z)"},
		{Value: services.SortNameDesc, Label: "Name (Z - A)"},
		{Value: services.SortPriceAsc, Label: "Price (Low - High)"},
		{Value: services.SortPriceDesc, Label: "Price (High - Low)"},
	}
	for i := range options {
		options[i].Selected = options[i].Value == current
	}
	return options
}

// pageURL returns the current listing URL switched to page
func pageURL(u *url.URL, page int) string {
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	return u.Path + "?" + query.Encode()
}
