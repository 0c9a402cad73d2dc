package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/browser/testutil"
)

func newHomeFixture() *testutil.FakePage {
	page := testutil.NewFakePage(baseURL + "/")
	page.Show(sel("nav-logo"), "Toolshop")
	page.Show(sel("search-query"), "")
	page.Show(sel("search-submit"), "Search")
	page.Show(sel("nav-categories"), "Categories")
	page.Show(sel("nav-sign-in"), "Sign in")
	page.Show(sel("nav-cart"), "")
	page.Show(sel("sort"), "")
	page.ShowN(sel("product-card"), 9)
	for _, link := range []string{"nav-hand-tools", "nav-power-tools", "nav-other", "nav-special-tools"} {
		page.Show(sel(link), link)
	}
	return page
}

func TestHomePage_Navigate(t *testing.T) {
	page := testutil.NewFakePage("about:blank")
	home := NewHomePage(page, testOptions)

	require.NoError(t, home.Navigate())
	assert.Equal(t, []string{"goto http://shop.test/", "settle"}, page.Actions)
}

func TestHomePage_SearchForProduct(t *testing.T) {
	page := newHomeFixture()
	page.OnClick[sel("search-submit")] = func(int) {
		page.CurrentURL = baseURL + "/search?q=" + page.Node(sel("search-query")).Value
		page.Remove(sel("product-card"))
		page.ShowN(sel("product-card"), 3)
	}
	home := NewHomePage(page, testOptions)

	require.NoError(t, home.Navigate())
	require.NoError(t, home.ValidateHomePageLoaded())
	require.NoError(t, home.SearchForProduct("hammer"))

	count, err := home.ValidateSearchResults("hammer")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{
		"goto http://shop.test/",
		"settle",
		`fill [data-test="search-query"]=hammer`,
		`click [data-test="search-submit"]`,
		"settle",
	}, page.Actions)
}

func TestHomePage_ValidateSearchResultsWrongURL(t *testing.T) {
	page := newHomeFixture()
	home := NewHomePage(page, testOptions)

	count, err := home.ValidateSearchResults("hammer")
	require.ErrorIs(t, err, browser.ErrAssertionFailed)
	assert.Zero(t, count)
}

func TestHomePage_ValidateHomePageLoadedMissingSearch(t *testing.T) {
	page := newHomeFixture()
	page.Remove(sel("search-query"))
	home := NewHomePage(page, testOptions)

	err := home.ValidateHomePageLoaded()
	require.ErrorIs(t, err, browser.ErrAssertionFailed)
	assert.Contains(t, err.Error(), "home.searchInput")
}

func TestHomePage_SelectCategory(t *testing.T) {
	tests := []struct {
		key         string
		wantActions []string
	}{
		{key: CategoryHandTools, wantActions: []string{`click [data-test="nav-hand-tools"]`, "settle"}},
		{key: CategoryPowerTools, wantActions: []string{`click [data-test="nav-power-tools"]`, "settle"}},
		{key: CategoryOther, wantActions: []string{`click [data-test="nav-other"]`, "settle"}},
		{key: CategorySpecialTools, wantActions: []string{`click [data-test="nav-special-tools"]`, "settle"}},
		{key: "garden", wantActions: nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			page := newHomeFixture()
			home := NewHomePage(page, testOptions)

			require.NoError(t, home.SelectCategory(tt.key))
			assert.Equal(t, tt.wantActions, page.Actions)
		})
	}
}

func TestHomePage_Pagination(t *testing.T) {
	page := newHomeFixture()
	home := NewHomePage(page, testOptions)

	require.NoError(t, home.GoToNextPage(), "absent control is skipped")
	require.NoError(t, home.GoToPreviousPage())
	assert.Empty(t, page.Actions)

	page.Show(sel("pagination-next"), "Next")
	require.NoError(t, home.GoToNextPage())
	assert.Equal(t, []string{`click [data-test="pagination-next"]`, "settle"}, page.Actions)
	assert.Equal(t, testOptions.Timeouts.Probe, page.Waits[0])
}

func TestHomePage_ProductGrid(t *testing.T) {
	page := newHomeFixture()
	page.Navigates(sel("product-card"), baseURL+"/product/01HK")
	home := NewHomePage(page, testOptions)

	count, err := home.ProductCount()
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	require.NoError(t, home.ClickProductByIndex(2))
	assert.Equal(t, []string{`click [data-test="product-card"] >> nth=2`, "settle"}, page.Actions)
	assert.Equal(t, baseURL+"/product/01HK", page.URL())

	require.ErrorIs(t, home.ClickProductByIndex(20), browser.ErrElementNotVisible)
}

func TestHomePage_SortAndCart(t *testing.T) {
	page := newHomeFixture()
	page.Navigates(sel("nav-cart"), baseURL+"/cart")
	home := NewHomePage(page, testOptions)

	require.NoError(t, home.SortProducts("price,asc"))
	require.NoError(t, home.NavigateToCart())
	assert.Equal(t, "price,asc", page.Node(sel("sort")).Value)
	assert.Equal(t, baseURL+"/cart", page.URL())
}

func TestHomePage_NavigateToSignIn(t *testing.T) {
	page := newHomeFixture()
	page.Navigates(sel("nav-sign-in"), baseURL+"/auth/login")
	home := NewHomePage(page, testOptions)

	require.NoError(t, home.NavigateToSignIn())
	require.NoError(t, home.ValidateURL(LoginPath))
}
