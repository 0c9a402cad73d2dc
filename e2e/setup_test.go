//go:build e2e

// Package e2e drives the fixture storefront in a real browser through the page
// objects. Run with: go test -tags e2e ./e2e/
// Browsers must be installed first (storefrontui install).
package e2e

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/handlers"
	"github.com/adyen/storefront-ui/internal/logging"
	"github.com/adyen/storefront-ui/internal/pageobject"
	"github.com/adyen/storefront-ui/internal/repository"
	"github.com/adyen/storefront-ui/internal/services"
)

var (
	driver  browser.Driver
	cfg     *config.BrowserConfig
	account config.Credentials
	logger  *logrus.Logger
)

// TestMain starts the storefront in-process and launches one browser for all tests
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	account = config.LoadServerConfig(os.Getenv).Account
	logger = logging.Discard()

	catalogRepo, err := repository.NewCatalogRepository(repository.SeedProducts())
	if err != nil {
		panic(err)
	}
	router, err := handlers.NewRouter(handlers.Dependencies{
		Catalog:  services.NewCatalogService(catalogRepo),
		Sessions: services.NewSessionService(repository.NewSessionRepository(), catalogRepo, account, logger),
		Logger:   logger,
	})
	if err != nil {
		panic(err)
	}

	srv := httptest.NewServer(router)
	defer srv.Close()

	// The in-process server always wins over BASE_URL
	cfg, err = config.LoadBrowserConfig(func(key string) string {
		if key == "BASE_URL" {
			return srv.URL
		}
		return os.Getenv(key)
	})
	if err != nil {
		panic(err)
	}

	driver, err = browser.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to launch %s via %s: %v\n", cfg.BrowserName, cfg.Driver, err)
		return 1
	}
	defer driver.Close()

	return m.Run()
}

// newPage opens an isolated browser session for one test
func newPage(t *testing.T) (browser.Page, pageobject.Options) {
	t.Helper()

	session, err := driver.NewSession()
	if err != nil {
		t.Fatalf("Failed to open browser session: %v", err)
	}
	t.Cleanup(func() {
		if err := session.Close(); err != nil {
			t.Logf("Failed to close browser session: %v", err)
		}
	})

	return session.Page(), pageobject.NewOptions(cfg, logger.WithField("test", t.Name()))
}
