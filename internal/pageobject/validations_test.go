package pageobject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/browser/testutil"
)

func assertFailure(t *testing.T, err error, expected, actual any) {
	t.Helper()
	require.ErrorIs(t, err, browser.ErrAssertionFailed)
	var failure *browser.AssertionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, expected, failure.Expected)
	assert.Equal(t, actual, failure.Actual)
}

func TestBase_ValidateElementVisible(t *testing.T) {
	page := testutil.NewFakePage(baseURL)
	page.Show(buttonSel, "Login")
	b := newTestBase(page, "/")

	require.NoError(t, b.ValidateElementVisible("button"))
	assertFailure(t, b.ValidateElementVisible("field"), true, false)
}

func TestBase_ValidateElementText(t *testing.T) {
	page := testutil.NewFakePage(baseURL)
	page.Show(buttonSel, "Login")
	b := newTestBase(page, "/")

	require.NoError(t, b.ValidateElementText("button", "Login"))
	assertFailure(t, b.ValidateElementText("button", "Logout"), "Logout", "Login")
	assertFailure(t, b.ValidateElementText("field", "x"), "x", "<absent>")
}

func TestBase_ValidateElementCount(t *testing.T) {
	page := testutil.NewFakePage(baseURL)
	page.ShowN(cardSel, 9)
	b := newTestBase(page, "/")

	require.NoError(t, b.ValidateElementCount("cards", 9))
	assertFailure(t, b.ValidateElementCount("cards", 3), 3, 9)
	require.NoError(t, b.ValidateElementCount("button", 0))
}

func TestBase_ValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		template string
		wantErr  bool
	}{
		{name: "exact path", url: "http://shop.test/auth/login", template: "/auth/login"},
		{name: "glob", url: "http://shop.test/product/01HK", template: "/product/**"},
		{name: "leading glob", url: "http://shop.test/account", template: "**/account"},
		{name: "mismatch", url: "http://shop.test/auth/login", template: "**/account", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := testutil.NewFakePage(tt.url)
			b := newTestBase(page, "/")

			err := b.ValidateURL(tt.template)
			if tt.wantErr {
				assertFailure(t, err, tt.template, tt.url)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBase_ValidateURLContains(t *testing.T) {
	page := testutil.NewFakePage("http://shop.test/category/hand-tools")
	b := newTestBase(page, "/")

	require.NoError(t, b.ValidateURLContains("hand-tools"))
	assertFailure(t, b.ValidateURLContains("power-tools"), "power-tools", "http://shop.test/category/hand-tools")
}

func TestBase_ValidateTitle(t *testing.T) {
	page := testutil.NewFakePage(baseURL)
	page.PageTitle = "Practice Software Testing - Toolshop"
	b := newTestBase(page, "/")

	require.NoError(t, b.ValidateTitle("Practice Software Testing - Toolshop"))
	assertFailure(t, b.ValidateTitle("Login"), "Login", "Practice Software Testing - Toolshop")
}
