package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/components"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/pages"
)

// Every locator a page object declares must be rendered by at least one state
// of the page it drives.
func TestPageObjectLocatorsAreRendered(t *testing.T) {
	srv := newTestStorefront(t)

	anonymous := newBrowser(t)
	signedIn := newBrowser(t)
	signIn(t, signedIn, srv.URL)
	resp := postJSON(t, signedIn, srv.URL+"/api/cart", `{"productId":"claw-hammer","quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tests := []struct {
		name     string
		registry locator.Registry
		states   func() []*goquery.Document
	}{
		{
			name:     "home",
			registry: pages.HomeRegistry(),
			states: func() []*goquery.Document {
				return []*goquery.Document{
					get(t, anonymous, srv.URL+"/").doc,
					get(t, anonymous, srv.URL+"/?page=2").doc,
				}
			},
		},
		{
			name:     "login",
			registry: pages.LoginRegistry(),
			states: func() []*goquery.Document {
				return []*goquery.Document{
					get(t, anonymous, srv.URL+"/auth/login?reset=1").doc,
					postForm(t, anonymous, srv.URL+"/auth/login", url.Values{
						"email":    {"nobody@example.com"},
						"password": {"wrong"},
					}).doc,
				}
			},
		},
		{
			name:     "product",
			registry: pages.ProductRegistry(),
			states: func() []*goquery.Document {
				return []*goquery.Document{get(t, anonymous, srv.URL+"/product/claw-hammer").doc}
			},
		},
		{
			name:     "navigation",
			registry: components.NavigationRegistry(),
			states: func() []*goquery.Document {
				return []*goquery.Document{
					get(t, anonymous, srv.URL+"/").doc,
					get(t, signedIn, srv.URL+"/").doc,
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := tt.states()
			for _, name := range tt.registry.Names() {
				selector := tt.registry.Selector(name)
				found := false
				for _, doc := range docs {
					if doc.Find(selector).Length() > 0 {
						found = true
						break
					}
				}
				assert.True(t, found, "%s.%s (%s) is not rendered", tt.registry.Owner(), name, selector)
			}
		})
	}
}
