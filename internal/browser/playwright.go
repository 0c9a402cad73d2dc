package browser

import (
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/adyen/storefront-ui/internal/config"
)

// PlaywrightPage adapts a playwright.Page. Validations use playwright's web-first
// assertions, which retry until they pass or time out.
type PlaywrightPage struct {
	page   playwright.Page
	expect playwright.PlaywrightAssertions
}

// NewPlaywrightPage wraps an existing playwright page
func NewPlaywrightPage(page playwright.Page) *PlaywrightPage {
	return &PlaywrightPage{
		page:   page,
		expect: playwright.NewPlaywrightAssertions(),
	}
}

func (p *PlaywrightPage) Goto(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (p *PlaywrightPage) WaitForSettled(timeout time.Duration) error {
	err := p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(millis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("%w within %s: %w", ErrSettleTimeout, timeout, err)
	}
	return nil
}

func (p *PlaywrightPage) URL() string {
	return p.page.URL()
}

func (p *PlaywrightPage) Title() (string, error) {
	return p.page.Title()
}

func (p *PlaywrightPage) Locator(selector string) Element {
	return &playwrightElement{
		selector: selector,
		locator:  p.page.Locator(selector),
		expect:   p.expect,
	}
}

func (p *PlaywrightPage) ExpectURL(pattern *regexp.Regexp, timeout time.Duration) error {
	return p.expect.Page(p.page).ToHaveURL(pattern, playwright.PageAssertionsToHaveURLOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (p *PlaywrightPage) ExpectTitle(title string, timeout time.Duration) error {
	return p.expect.Page(p.page).ToHaveTitle(title, playwright.PageAssertionsToHaveTitleOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

type playwrightElement struct {
	selector string
	locator  playwright.Locator
	expect   playwright.PlaywrightAssertions
}

func (e *playwrightElement) Selector() string {
	return e.selector
}

func (e *playwrightElement) Nth(index int) Element {
	return &playwrightElement{
		selector: fmt.Sprintf("%s >> nth=%d", e.selector, index),
		locator:  e.locator.Nth(index),
		expect:   e.expect,
	}
}

func (e *playwrightElement) WaitVisible(timeout time.Duration) error {
	return e.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (e *playwrightElement) Click() error {
	return e.locator.Click()
}

func (e *playwrightElement) Fill(value string) error {
	return e.locator.Fill(value)
}

func (e *playwrightElement) Clear() error {
	return e.locator.Clear()
}

func (e *playwrightElement) SelectOption(value string) error {
	_, err := e.locator.SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return err
}

func (e *playwrightElement) ScrollIntoView() error {
	return e.locator.ScrollIntoViewIfNeeded()
}

func (e *playwrightElement) TextContent() (string, error) {
	return e.locator.TextContent()
}

func (e *playwrightElement) InputValue() (string, error) {
	return e.locator.InputValue()
}

func (e *playwrightElement) IsEnabled() (bool, error) {
	return e.locator.IsEnabled()
}

func (e *playwrightElement) Count() (int, error) {
	return e.locator.Count()
}

func (e *playwrightElement) ExpectVisible(timeout time.Duration) error {
	return e.expect.Locator(e.locator).ToBeVisible(playwright.LocatorAssertionsToBeVisibleOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (e *playwrightElement) ExpectText(text string, timeout time.Duration) error {
	return e.expect.Locator(e.locator).ToHaveText(text, playwright.LocatorAssertionsToHaveTextOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (e *playwrightElement) ExpectCount(count int, timeout time.Duration) error {
	return e.expect.Locator(e.locator).ToHaveCount(count, playwright.LocatorAssertionsToHaveCountOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

// PlaywrightDriver runs one playwright browser; every session gets its own context
type PlaywrightDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywrightDriver starts playwright and launches the configured browser
func NewPlaywrightDriver(cfg *config.BrowserConfig) (*PlaywrightDriver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch cfg.BrowserName {
	case config.BrowserFirefox:
		browserType = pw.Firefox
	case config.BrowserWebKit:
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(millis(cfg.SlowMo)),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.BrowserName, err)
	}

	return &PlaywrightDriver{pw: pw, browser: browser}, nil
}

// NewSession opens a fresh browser context with a single page
func (d *PlaywrightDriver) NewSession() (Session, error) {
	ctx, err := d.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &playwrightSession{ctx: ctx, page: NewPlaywrightPage(page)}, nil
}

// Close shuts the browser and the playwright driver down
func (d *PlaywrightDriver) Close() error {
	if err := d.browser.Close(); err != nil {
		d.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return d.pw.Stop()
}

type playwrightSession struct {
	ctx  playwright.BrowserContext
	page *PlaywrightPage
}

func (s *playwrightSession) Page() Page {
	return s.page
}

func (s *playwrightSession) Close() error {
	return s.ctx.Close()
}

// InstallPlaywright downloads the playwright driver and the named browsers
func InstallPlaywright(browsers ...string) error {
	return playwright.Install(&playwright.RunOptions{Browsers: browsers})
}
