//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/components"
	"github.com/adyen/storefront-ui/internal/pages"
)

// TestCategoryNavigation
// Feature: Browse by category
//
//	As a customer
//	I want to open a category
//	So that I only see the tools I am looking for
func TestCategoryNavigation(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)

	// Given I am on the home page
	require.NoError(t, home.Navigate())
	require.NoError(t, home.ValidateHomePageLoaded())

	// When I select the hand tools category
	require.NoError(t, home.SelectCategory(pages.CategoryHandTools))

	// Then the URL names the category and products are listed
	require.NoError(t, home.ValidateURLContains("hand-tools"))
	count, err := home.ProductCount()
	require.NoError(t, err)
	assert.Greater(t, count, 0)

	// Unknown categories are ignored
	require.NoError(t, home.SelectCategory("garden"))
	require.NoError(t, home.ValidateURLContains("hand-tools"))
}

// TestEmptyCart
// Feature: Cart badge
//
//	As a new visitor
//	I want the cart badge to read zero
//	So that I know nothing is in my cart
func TestEmptyCart(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)
	nav := components.NewNavigation(page, opts)

	// Given I am on the home page with nothing added
	require.NoError(t, home.Navigate())

	// Then the cart count is zero
	assert.Equal(t, 0, nav.CartCount())
	require.NoError(t, nav.ValidateCartCount(0))
	require.NoError(t, nav.ValidateNavigationVisible())
}

func TestSearch(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)

	require.NoError(t, home.Navigate())
	require.NoError(t, home.SearchForProduct("hammer"))

	count, err := home.ValidateSearchResults("hammer")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPaginationAndSort(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)

	require.NoError(t, home.Navigate())
	require.NoError(t, home.ValidateElementCount(pages.HomeProductCards, 9))

	require.NoError(t, home.GoToNextPage())
	require.NoError(t, home.ValidateURLContains("page=2"))
	require.NoError(t, home.ValidateElementCount(pages.HomeProductCards, 5))

	// The last page has no next control
	require.NoError(t, home.GoToNextPage())
	require.NoError(t, home.ValidateURLContains("page=2"))

	require.NoError(t, home.GoToPreviousPage())
	require.NoError(t, home.ValidateURLContains("page=1"))

	require.NoError(t, home.SortProducts("price,desc"))
	require.NoError(t, home.ValidateURLContains("sort=price%2Cdesc"))
}

func TestHeaderLinks(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)
	nav := components.NewNavigation(page, opts)

	require.NoError(t, home.Navigate())

	require.NoError(t, nav.NavigateToContact())
	require.NoError(t, nav.ValidateURL("/contact"))

	require.NoError(t, nav.NavigateToCart())
	require.NoError(t, nav.ValidateURL("/cart"))

	require.NoError(t, nav.NavigateToHome())
	require.NoError(t, home.ValidateURL(pages.HomePath))

	require.NoError(t, home.NavigateToSignIn())
	require.NoError(t, home.ValidateURL(pages.LoginPath))
}
