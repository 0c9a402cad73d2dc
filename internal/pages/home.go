package pages

import (
	"net/url"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/pageobject"
)

// HomePath is the home page URL template
const HomePath = "/"

// Home page locator names
const (
	HomeLogo               locator.Name = "logo"
	HomeSearchInput        locator.Name = "searchInput"
	HomeSearchButton       locator.Name = "searchButton"
	HomeCategoryMenu       locator.Name = "categoryMenu"
	HomeContactMenu        locator.Name = "contactMenu"
	HomeSignInMenu         locator.Name = "signInMenu"
	HomeLink               locator.Name = "homeLink"
	HomeCartIcon           locator.Name = "cartIcon"
	HomeProductCards       locator.Name = "productCards"
	HomeCategoryLinks      locator.Name = "categoryLinks"
	HomeHandTools          locator.Name = "handToolsCategory"
	HomePowerTools         locator.Name = "powerToolsCategory"
	HomeOtherCategory      locator.Name = "otherCategory"
	HomeSpecialTools       locator.Name = "specialToolsCategory"
	HomePaginationNext     locator.Name = "paginationNext"
	HomePaginationPrevious locator.Name = "paginationPrevious"
	HomeSortDropdown       locator.Name = "sortDropdown"
	HomeFiltersPanel       locator.Name = "filtersPanel"
	HomePriceSlider        locator.Name = "priceSlider"
	HomeBrandFilter        locator.Name = "brandFilter"
)

// Category keys accepted by SelectCategory
const (
	CategoryHandTools    = "hand-tools"
	CategoryPowerTools   = "power-tools"
	CategoryOther        = "other"
	CategorySpecialTools = "special-tools"
)

var homeRegistry = locator.NewRegistry("home",
	locator.Define(HomeLogo, "nav-logo"),
	locator.Define(HomeSearchInput, "search-query"),
	locator.Define(HomeSearchButton, "search-submit"),
	locator.Define(HomeCategoryMenu, "nav-categories"),
	locator.Define(HomeContactMenu, "nav-contact"),
	locator.Define(HomeSignInMenu, "nav-sign-in"),
	locator.Define(HomeLink, "nav-home"),
	locator.Define(HomeCartIcon, "nav-cart"),
	locator.Define(HomeProductCards, "product-card"),
	locator.Define(HomeCategoryLinks, "category-link"),
	locator.Define(HomeHandTools, "nav-hand-tools"),
	locator.Define(HomePowerTools, "nav-power-tools"),
	locator.Define(HomeOtherCategory, "nav-other"),
	locator.Define(HomeSpecialTools, "nav-special-tools"),
	locator.Define(HomePaginationNext, "pagination-next"),
	locator.Define(HomePaginationPrevious, "pagination-previous"),
	locator.Define(HomeSortDropdown, "sort"),
	locator.Define(HomeFiltersPanel, "filters"),
	locator.Define(HomePriceSlider, "price-slider"),
	locator.Define(HomeBrandFilter, "brand-filter"),
)

// categoryLinks maps SelectCategory keys to their navigation links
var categoryLinks = map[string]locator.Name{
	CategoryHandTools:    HomeHandTools,
	CategoryPowerTools:   HomePowerTools,
	CategoryOther:        HomeOtherCategory,
	CategorySpecialTools: HomeSpecialTools,
}

// HomeRegistry returns the home page's locator registry
func HomeRegistry() locator.Registry {
	return homeRegistry
}

// HomePage is the storefront landing page with search, categories and the product grid
type HomePage struct {
	*pageobject.Base
}

// NewHomePage creates a home page object bound to page
func NewHomePage(page browser.Page, opts pageobject.Options) *HomePage {
	return &HomePage{
		Base: pageobject.New(page, HomePath, homeRegistry, opts),
	}
}

// SearchForProduct submits a search for term and waits for the results
func (p *HomePage) SearchForProduct(term string) error {
	if err := p.FillText(HomeSearchInput, term); err != nil {
		return err
	}
	if err := p.Click(HomeSearchButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// SelectCategory opens one of the four known categories.
// Any other key is ignored without navigating.
func (p *HomePage) SelectCategory(key string) error {
	name, ok := categoryLinks[key]
	if !ok {
		p.Logger().WithField("category", key).Debug("SelectCategory: unknown category, skipping")
		return nil
	}
	if err := p.Click(name); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// NavigateToSignIn follows the sign-in menu entry
func (p *HomePage) NavigateToSignIn() error {
	if err := p.Click(HomeSignInMenu); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// NavigateToCart follows the cart icon
func (p *HomePage) NavigateToCart() error {
	if err := p.Click(HomeCartIcon); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// SortProducts picks option in the sort dropdown
func (p *HomePage) SortProducts(option string) error {
	if err := p.SelectOption(HomeSortDropdown, option); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// GoToNextPage advances the product grid when a next-page control is shown
func (p *HomePage) GoToNextPage() error {
	return p.paginate(HomePaginationNext)
}

// GoToPreviousPage steps the product grid back when a previous-page control is shown
func (p *HomePage) GoToPreviousPage() error {
	return p.paginate(HomePaginationPrevious)
}

func (p *HomePage) paginate(control locator.Name) error {
	if !p.IsElementVisible(control) {
		p.Logger().WithField("locator", control).Debug("pagination control absent, skipping")
		return nil
	}
	if err := p.Click(control); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// ProductCount returns the number of product cards currently shown
func (p *HomePage) ProductCount() (int, error) {
	return p.Count(HomeProductCards)
}

// ClickProductByIndex opens the index-th product card
func (p *HomePage) ClickProductByIndex(index int) error {
	if err := p.ClickNth(HomeProductCards, index); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// ValidateHomePageLoaded asserts the logo, search box and category menu are shown
func (p *HomePage) ValidateHomePageLoaded() error {
	for _, name := range []locator.Name{HomeLogo, HomeSearchInput, HomeCategoryMenu} {
		if err := p.ValidateElementVisible(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSearchResults asserts the page shows results for term and returns how many
func (p *HomePage) ValidateSearchResults(term string) (int, error) {
	if err := p.ValidateURL("**/search?q=" + url.QueryEscape(term) + "**"); err != nil {
		return 0, err
	}

	count, err := p.ProductCount()
	if err != nil {
		return 0, err
	}
	p.Logger().WithField("term", term).Infof("found %d products", count)
	return count, nil
}
