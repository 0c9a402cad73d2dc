//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/pages"
)

// TestRepeatedNavigation
// Feature: Long browsing sessions
//
//	As a test suite
//	I want to navigate the same session many times
//	So that per-call navigation and settle timeouts never leak into later calls
func TestRepeatedNavigation(t *testing.T) {
	page, opts := newPage(t)
	home := pages.NewHomePage(page, opts)
	login := pages.NewLoginPage(page, opts)

	for i := 0; i < 25; i++ {
		// Given I open the home page
		require.NoError(t, home.Navigate(), "round %d", i)
		require.NoError(t, home.ValidateHomePageLoaded(), "round %d", i)

		// When I go to sign in and wait for the page to settle
		require.NoError(t, login.Navigate(), "round %d", i)
		require.NoError(t, page.WaitForSettled(opts.Timeouts.Settle), "round %d", i)

		// Then the login page is still fully usable
		require.NoError(t, login.ValidateLoginPageLoaded(), "round %d", i)
	}
}
