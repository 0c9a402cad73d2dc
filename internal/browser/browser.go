package browser

import (
	"regexp"
	"time"
)

// Page is one browser tab bound to an isolated context.
// It is shared by every page object constructed against it in a test.
type Page interface {
	// Goto navigates the tab to an absolute URL
	Goto(url string) error
	// WaitForSettled blocks until no network activity is pending or timeout elapses
	WaitForSettled(timeout time.Duration) error
	URL() string
	Title() (string, error)
	// Locator returns a lazy handle; the DOM is queried only when the handle is used
	Locator(selector string) Element
	// ExpectURL retries until the current URL matches pattern or timeout elapses
	ExpectURL(pattern *regexp.Regexp, timeout time.Duration) error
	// ExpectTitle retries until the title equals title or timeout elapses
	ExpectTitle(title string, timeout time.Duration) error
}

// Element is a lazily resolved handle to the element(s) matched by a selector
type Element interface {
	Selector() string
	Nth(index int) Element

	WaitVisible(timeout time.Duration) error
	Click() error
	Fill(value string) error
	Clear() error
	SelectOption(value string) error
	ScrollIntoView() error

	TextContent() (string, error)
	InputValue() (string, error)
	IsEnabled() (bool, error)
	Count() (int, error)

	ExpectVisible(timeout time.Duration) error
	ExpectText(text string, timeout time.Duration) error
	ExpectCount(count int, timeout time.Duration) error
}

// Session owns one isolated browser context and the single Page opened in it
type Session interface {
	Page() Page
	Close() error
}

// Driver launches a browser and hands out isolated sessions
type Driver interface {
	NewSession() (Session, error)
	Close() error
}

func millis(d time.Duration) float64 {
	return float64(d / time.Millisecond)
}
