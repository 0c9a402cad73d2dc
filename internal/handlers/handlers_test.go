package handlers

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/logging"
	"github.com/adyen/storefront-ui/internal/repository"
	"github.com/adyen/storefront-ui/internal/services"
)

var testAccount = config.Credentials{Email: "customer@example.com", Password: "welcome01"}

// newTestStorefront serves the storefront with the seed catalog and a fresh session store
func newTestStorefront(t *testing.T) *httptest.Server {
	t.Helper()

	catalogRepo, err := repository.NewCatalogRepository(repository.SeedProducts())
	require.NoError(t, err)
	logger := logging.Discard()

	router, err := NewRouter(Dependencies{
		Catalog:  services.NewCatalogService(catalogRepo),
		Sessions: services.NewSessionService(repository.NewSessionRepository(), catalogRepo, testAccount, logger),
		Logger:   logger,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// newBrowser returns a client that keeps cookies and does not follow redirects
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

type response struct {
	status   int
	header   http.Header
	doc      *goquery.Document
	location string
}

func fetch(t *testing.T, client *http.Client, req *http.Request) response {
	t.Helper()
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return response{
		status:   resp.StatusCode,
		header:   resp.Header,
		doc:      doc,
		location: resp.Header.Get("Location"),
	}
}

func get(t *testing.T, client *http.Client, rawURL string) response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	require.NoError(t, err)
	return fetch(t, client, req)
}

func postForm(t *testing.T, client *http.Client, rawURL string, form url.Values) response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return fetch(t, client, req)
}

func postJSON(t *testing.T, client *http.Client, rawURL, body string) *http.Response {
	t.Helper()
	resp, err := client.Post(rawURL, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func dataTest(doc *goquery.Document, name string) *goquery.Selection {
	return doc.Find(`[data-test="` + name + `"]`)
}

func signIn(t *testing.T, client *http.Client, base string) {
	t.Helper()
	resp := postForm(t, client, base+"/auth/login", url.Values{
		"email":    {testAccount.Email},
		"password": {testAccount.Password},
	})
	require.Equal(t, http.StatusSeeOther, resp.status)
}
