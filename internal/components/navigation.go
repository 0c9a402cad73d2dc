// Package components holds page objects for fragments shared across pages.
package components

import (
	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/pageobject"
)

// Navigation locator names
const (
	NavMainMenu   locator.Name = "mainMenu"
	NavHome       locator.Name = "homeLink"
	NavCategories locator.Name = "categoriesMenu"
	NavContact    locator.Name = "contactLink"
	NavSignIn     locator.Name = "signInLink"
	NavCart       locator.Name = "cartLink"
	NavCartCount  locator.Name = "cartCount"
	NavUserMenu   locator.Name = "userMenu"
	NavLogout     locator.Name = "logoutLink"
	NavAccount    locator.Name = "accountLink"
	NavFavorites  locator.Name = "favoritesLink"
)

var navigationRegistry = locator.NewRegistry("navigation",
	locator.Define(NavMainMenu, "main-menu"),
	locator.Define(NavHome, "nav-home"),
	locator.Define(NavCategories, "nav-categories"),
	locator.Define(NavContact, "nav-contact"),
	locator.Define(NavSignIn, "nav-sign-in"),
	locator.Define(NavCart, "nav-cart"),
	locator.Define(NavCartCount, "cart-count"),
	locator.Define(NavUserMenu, "user-menu"),
	locator.Define(NavLogout, "nav-logout"),
	locator.Define(NavAccount, "nav-account"),
	locator.Define(NavFavorites, "nav-favorites"),
)

// NavigationRegistry returns the navigation bar's locator registry
func NavigationRegistry() locator.Registry {
	return navigationRegistry
}

// Navigation is the header bar present on every storefront page. It has no
// URL of its own, so Navigate always fails with pageobject.ErrNoFixedURL.
type Navigation struct {
	*pageobject.Base
}

// NewNavigation creates the header component bound to page
func NewNavigation(page browser.Page, opts pageobject.Options) *Navigation {
	return &Navigation{
		Base: pageobject.New(page, "", navigationRegistry, opts),
	}
}

// NavigateToHome follows the home link
func (n *Navigation) NavigateToHome() error {
	return n.follow(NavHome)
}

// NavigateToContact opens the contact page
func (n *Navigation) NavigateToContact() error {
	return n.follow(NavContact)
}

// NavigateToSignIn follows the sign-in link
func (n *Navigation) NavigateToSignIn() error {
	return n.follow(NavSignIn)
}

// NavigateToCart opens the cart page
func (n *Navigation) NavigateToCart() error {
	return n.follow(NavCart)
}

// NavigateToAccount opens the account page; it does nothing when signed out
func (n *Navigation) NavigateToAccount() error {
	return n.followIfShown(NavAccount)
}

// NavigateToFavorites opens the favorites page; it does nothing when signed out
func (n *Navigation) NavigateToFavorites() error {
	return n.followIfShown(NavFavorites)
}

// Logout signs the user out; it does nothing when no logout link is shown
func (n *Navigation) Logout() error {
	return n.followIfShown(NavLogout)
}

// ExpandUserMenu opens the signed-in user's dropdown; it does nothing when signed out
func (n *Navigation) ExpandUserMenu() error {
	if !n.IsElementVisible(NavUserMenu) {
		n.Logger().WithField("locator", NavUserMenu).Debug("user menu absent, skipping")
		return nil
	}
	return n.Click(NavUserMenu)
}

// CartCount returns the number on the cart badge. A hidden badge or one
// without a number reads as an empty cart.
func (n *Navigation) CartCount() int {
	if !n.IsElementVisible(NavCartCount) {
		return 0
	}
	text, err := n.Text(NavCartCount)
	if err != nil {
		n.Logger().WithError(err).Debug("cart badge vanished before it was read")
		return 0
	}
	return pageobject.IntOrDefault(text, 0)
}

// IsUserLoggedIn reports whether the user menu is shown
func (n *Navigation) IsUserLoggedIn() bool {
	return n.IsElementVisible(NavUserMenu)
}

// ValidateNavigationVisible asserts the main menu, home link and cart link are shown
func (n *Navigation) ValidateNavigationVisible() error {
	for _, name := range []locator.Name{NavMainMenu, NavHome, NavCart} {
		if err := n.ValidateElementVisible(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUserLoggedIn asserts the user menu is shown
func (n *Navigation) ValidateUserLoggedIn() error {
	return n.ValidateElementVisible(NavUserMenu)
}

// ValidateUserLoggedOut asserts the sign-in link is shown
func (n *Navigation) ValidateUserLoggedOut() error {
	return n.ValidateElementVisible(NavSignIn)
}

// ValidateCartCount asserts the cart badge reads expected
func (n *Navigation) ValidateCartCount(expected int) error {
	if actual := n.CartCount(); actual != expected {
		return &browser.AssertionFailure{
			Check:    "cart count",
			Target:   navigationRegistry.Owner() + "." + string(NavCartCount),
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}

func (n *Navigation) follow(name locator.Name) error {
	if err := n.Click(name); err != nil {
		return err
	}
	return n.WaitForPageLoad()
}

func (n *Navigation) followIfShown(name locator.Name) error {
	if !n.IsElementVisible(name) {
		n.Logger().WithField("locator", name).Debug("link absent, skipping")
		return nil
	}
	return n.follow(name)
}
