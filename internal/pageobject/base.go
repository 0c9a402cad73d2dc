package pageobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/logging"
)

// ErrNoFixedURL is returned by Navigate when the URL template is empty or a glob
var ErrNoFixedURL = errors.New("url template is not navigable")

// PageObject is the capability set every page and component provides
type PageObject interface {
	Navigate() error
	WaitForPageLoad() error
	Locate(name locator.Name) browser.Element
}

// Options holds what every page object needs besides its page and registry
type Options struct {
	BaseURL  string
	Timeouts config.Timeouts
	Logger   logrus.FieldLogger
}

// NewOptions derives page object options from the browser configuration
func NewOptions(cfg *config.BrowserConfig, logger logrus.FieldLogger) Options {
	return Options{
		BaseURL:  cfg.BaseURL,
		Timeouts: cfg.Timeouts,
		Logger:   logger,
	}
}

// Base binds a browser page to a URL template and a locator registry, and
// implements the action and validation protocols on top of them.
//
// Construction performs no I/O. Callers sequence Navigate, WaitForPageLoad and
// interactions themselves; nothing here waits for settlement implicitly.
type Base struct {
	page     browser.Page
	template string
	registry locator.Registry
	opts     Options
	log      logrus.FieldLogger
}

var _ PageObject = (*Base)(nil)

// New creates a Base. An empty template marks an object valid on every page.
func New(page browser.Page, template string, registry locator.Registry, opts Options) *Base {
	if opts.Timeouts == (config.Timeouts{}) {
		opts.Timeouts = config.DefaultTimeouts()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Base{
		page:     page,
		template: template,
		registry: registry,
		opts:     opts,
		log:      logger.WithField("page", registry.Owner()),
	}
}

// Page returns the shared browser page
func (b *Base) Page() browser.Page {
	return b.page
}

// URLTemplate returns the path template the object was declared with
func (b *Base) URLTemplate() string {
	return b.template
}

// Registry returns the object's locator registry
func (b *Base) Registry() locator.Registry {
	return b.registry
}

// Logger returns the object's logger, tagged with its registry owner
func (b *Base) Logger() logrus.FieldLogger {
	return b.log
}

// Navigate opens the object's URL template and waits until the page settles
func (b *Base) Navigate() error {
	if b.template == "" || browser.IsGlob(b.template) {
		return fmt.Errorf("%w: %s %q", ErrNoFixedURL, b.registry.Owner(), b.template)
	}
	return b.NavigateTo(b.template)
}

// NavigateTo opens a path below the base URL and waits until the page settles
func (b *Base) NavigateTo(path string) error {
	url := strings.TrimRight(b.opts.BaseURL, "/") + path
	b.log.WithField("url", url).Debug("Page:Goto")

	if err := b.page.Goto(url); err != nil {
		return err
	}
	return b.WaitForPageLoad()
}

// WaitForPageLoad blocks until no network activity is pending
func (b *Base) WaitForPageLoad() error {
	return b.page.WaitForSettled(b.opts.Timeouts.Settle)
}

// Locate resolves a registry name to a lazy element handle
func (b *Base) Locate(name locator.Name) browser.Element {
	return b.page.Locator(b.registry.Selector(name))
}
