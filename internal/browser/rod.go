package browser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/adyen/storefront-ui/internal/config"
)

const pollInterval = 100 * time.Millisecond

var errNoElement = errors.New("no element matches")

// RodPage adapts a rod.Page. Rod has no retrying assertions, so validations poll.
type RodPage struct {
	page *rod.Page
	// bounds navigation, which rod otherwise waits on forever
	navTimeout time.Duration
}

// NewRodPage wraps an existing rod page
func NewRodPage(page *rod.Page, navTimeout time.Duration) *RodPage {
	return &RodPage{page: page, navTimeout: navTimeout}
}

func (p *RodPage) Goto(url string) error {
	page := p.page.Timeout(p.navTimeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

func (p *RodPage) WaitForSettled(timeout time.Duration) error {
	page := p.page.Timeout(timeout)
	defer page.CancelTimeout()

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w within %s: %w", ErrSettleTimeout, timeout, err)
	}
	// Same idle window playwright uses for networkidle
	page.WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()
	return nil
}

func (p *RodPage) URL() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (p *RodPage) Title() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

func (p *RodPage) Locator(selector string) Element {
	return &rodElement{page: p.page, selector: selector}
}

func (p *RodPage) ExpectURL(pattern *regexp.Regexp, timeout time.Duration) error {
	return poll(timeout, func() (bool, error) {
		url := p.URL()
		if pattern.MatchString(url) {
			return true, nil
		}
		return false, fmt.Errorf("url %q does not match %s", url, pattern)
	})
}

func (p *RodPage) ExpectTitle(title string, timeout time.Duration) error {
	return poll(timeout, func() (bool, error) {
		actual, err := p.Title()
		if err != nil {
			return false, err
		}
		if actual == title {
			return true, nil
		}
		return false, fmt.Errorf("title is %q", actual)
	})
}

// rodElement resolves its selector on every call and acts on the match at index
type rodElement struct {
	page     *rod.Page
	selector string
	index    int
	nth      bool
}

func (e *rodElement) Selector() string {
	if e.nth {
		return fmt.Sprintf("%s >> nth=%d", e.selector, e.index)
	}
	return e.selector
}

func (e *rodElement) Nth(index int) Element {
	return &rodElement{page: e.page, selector: e.selector, index: index, nth: true}
}

func (e *rodElement) find() (*rod.Element, error) {
	els, err := e.page.Elements(e.selector)
	if err != nil {
		return nil, err
	}
	if e.index >= len(els) {
		return nil, fmt.Errorf("%w %s", errNoElement, e.Selector())
	}
	return els[e.index], nil
}

func (e *rodElement) visible() (bool, error) {
	el, err := e.find()
	if err != nil {
		return false, err
	}
	return el.Visible()
}

func (e *rodElement) WaitVisible(timeout time.Duration) error {
	return poll(timeout, e.visible)
}

func (e *rodElement) Click() error {
	el, err := e.find()
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (e *rodElement) Fill(value string) error {
	el, err := e.find()
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return err
	}
	return el.Input(value)
}

func (e *rodElement) Clear() error {
	return e.Fill("")
}

func (e *rodElement) SelectOption(value string) error {
	el, err := e.find()
	if err != nil {
		return err
	}
	return el.Select([]string{fmt.Sprintf("[value=%q]", value)}, true, rod.SelectorTypeCSSSector)
}

func (e *rodElement) ScrollIntoView() error {
	el, err := e.find()
	if err != nil {
		return err
	}
	return el.ScrollIntoView()
}

func (e *rodElement) TextContent() (string, error) {
	el, err := e.find()
	if err != nil {
		return "", err
	}
	return el.Text()
}

func (e *rodElement) InputValue() (string, error) {
	el, err := e.find()
	if err != nil {
		return "", err
	}
	value, err := el.Property("value")
	if err != nil {
		return "", err
	}
	return value.Str(), nil
}

func (e *rodElement) IsEnabled() (bool, error) {
	el, err := e.find()
	if err != nil {
		return false, err
	}
	disabled, err := el.Disabled()
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

func (e *rodElement) Count() (int, error) {
	els, err := e.page.Elements(e.selector)
	if err != nil {
		return 0, err
	}
	return len(els), nil
}

func (e *rodElement) ExpectVisible(timeout time.Duration) error {
	return poll(timeout, e.visible)
}

func (e *rodElement) ExpectText(text string, timeout time.Duration) error {
	want := normalizeSpace(text)
	return poll(timeout, func() (bool, error) {
		actual, err := e.TextContent()
		if err != nil {
			return false, err
		}
		if normalizeSpace(actual) == want {
			return true, nil
		}
		return false, fmt.Errorf("text is %q", actual)
	})
}

func (e *rodElement) ExpectCount(count int, timeout time.Duration) error {
	return poll(timeout, func() (bool, error) {
		actual, err := e.Count()
		if err != nil {
			return false, err
		}
		if actual == count {
			return true, nil
		}
		return false, fmt.Errorf("count is %d", actual)
	})
}

// poll calls check until it reports true or timeout elapses.
// The last check error is wrapped into the timeout error.
func poll(timeout time.Duration, check func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := check()
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			if err != nil {
				return fmt.Errorf("timed out after %s: %w", timeout, err)
			}
			return fmt.Errorf("timed out after %s", timeout)
		}
		time.Sleep(pollInterval)
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RodDriver runs one Chromium through rod; every session is an incognito context
type RodDriver struct {
	launcher   *launcher.Launcher
	browser    *rod.Browser
	navTimeout time.Duration
}

// NewRodDriver launches Chromium and connects rod to it
func NewRodDriver(cfg *config.BrowserConfig) (*RodDriver, error) {
	l := launcher.New().Headless(cfg.Headless)
	if path, ok := launcher.LookPath(); ok {
		l = l.Bin(path)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	b := rod.New().ControlURL(u)
	if cfg.SlowMo > 0 {
		b = b.SlowMotion(cfg.SlowMo)
	}
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to chromium: %w", err)
	}

	return &RodDriver{launcher: l, browser: b, navTimeout: cfg.Timeouts.Settle}, nil
}

// NewSession opens an incognito context with a single blank page
func (d *RodDriver) NewSession() (Session, error) {
	incognito, err := d.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("failed to create incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		incognito.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &rodSession{context: incognito, page: NewRodPage(page, d.navTimeout)}, nil
}

// Close shuts the browser down and removes its profile directory
func (d *RodDriver) Close() error {
	err := d.browser.Close()
	d.launcher.Cleanup()
	if err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}

type rodSession struct {
	context *rod.Browser
	page    *RodPage
}

func (s *rodSession) Page() Page {
	return s.page
}

func (s *rodSession) Close() error {
	if err := s.page.page.Close(); err != nil {
		s.context.Close()
		return err
	}
	return s.context.Close()
}
