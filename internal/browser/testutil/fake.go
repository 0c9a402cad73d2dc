package testutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adyen/storefront-ui/internal/browser"
)

// Node is one fake DOM element
type Node struct {
	Visible  bool
	Text     string
	Value    string
	Disabled bool
}

// FakePage is an in-memory browser.Page. Elements are keyed by selector and
// every interaction is appended to Actions so tests can assert on call order.
type FakePage struct {
	CurrentURL string
	PageTitle  string
	Nodes      map[string][]*Node
	// OnClick runs after a click on selector; the argument is the clicked index
	OnClick   map[string]func(index int)
	Actions   []string
	GotoErr   error
	SettleErr error
	// Waits records the timeout of every visibility wait, in call order
	Waits []time.Duration
}

var _ browser.Page = (*FakePage)(nil)

// NewFakePage creates an empty page showing url
func NewFakePage(url string) *FakePage {
	return &FakePage{
		CurrentURL: url,
		Nodes:      make(map[string][]*Node),
		OnClick:    make(map[string]func(int)),
	}
}

// Show adds one visible node with text under selector and returns it
func (p *FakePage) Show(selector, text string) *Node {
	n := &Node{Visible: true, Text: text}
	p.Nodes[selector] = append(p.Nodes[selector], n)
	return n
}

// ShowN adds count visible nodes under selector
func (p *FakePage) ShowN(selector string, count int) {
	for i := 0; i < count; i++ {
		p.Show(selector, fmt.Sprintf("%s #%d", selector, i))
	}
}

// Remove deletes every node under selector
func (p *FakePage) Remove(selector string) {
	delete(p.Nodes, selector)
}

// Node returns the first node under selector, or nil
func (p *FakePage) Node(selector string) *Node {
	if nodes := p.Nodes[selector]; len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// Navigates replaces the current URL when selector is clicked
func (p *FakePage) Navigates(selector, url string) {
	p.OnClick[selector] = func(int) {
		p.CurrentURL = url
	}
}

func (p *FakePage) record(format string, args ...any) {
	p.Actions = append(p.Actions, fmt.Sprintf(format, args...))
}

func (p *FakePage) Goto(url string) error {
	p.record("goto %s", url)
	if p.GotoErr != nil {
		return p.GotoErr
	}
	p.CurrentURL = url
	return nil
}

func (p *FakePage) WaitForSettled(timeout time.Duration) error {
	p.record("settle")
	return p.SettleErr
}

func (p *FakePage) URL() string {
	return p.CurrentURL
}

func (p *FakePage) Title() (string, error) {
	return p.PageTitle, nil
}

func (p *FakePage) Locator(selector string) browser.Element {
	return &fakeElement{page: p, selector: selector}
}

func (p *FakePage) ExpectURL(pattern *regexp.Regexp, timeout time.Duration) error {
	if !pattern.MatchString(p.CurrentURL) {
		return fmt.Errorf("url %q does not match %s", p.CurrentURL, pattern)
	}
	return nil
}

func (p *FakePage) ExpectTitle(title string, timeout time.Duration) error {
	if p.PageTitle != title {
		return fmt.Errorf("title is %q", p.PageTitle)
	}
	return nil
}

type fakeElement struct {
	page     *FakePage
	selector string
	index    int
}

func (e *fakeElement) node() (*Node, error) {
	nodes := e.page.Nodes[e.selector]
	if e.index >= len(nodes) {
		return nil, fmt.Errorf("no element %s", e.Selector())
	}
	return nodes[e.index], nil
}

func (e *fakeElement) Selector() string {
	if e.index > 0 {
		return fmt.Sprintf("%s >> nth=%d", e.selector, e.index)
	}
	return e.selector
}

func (e *fakeElement) Nth(index int) browser.Element {
	return &fakeElement{page: e.page, selector: e.selector, index: index}
}

func (e *fakeElement) WaitVisible(timeout time.Duration) error {
	e.page.Waits = append(e.page.Waits, timeout)
	n, err := e.node()
	if err != nil {
		return fmt.Errorf("timeout %s: %w", timeout, err)
	}
	if !n.Visible {
		return fmt.Errorf("timeout %s: %s is hidden", timeout, e.Selector())
	}
	return nil
}

func (e *fakeElement) Click() error {
	if _, err := e.node(); err != nil {
		return err
	}
	e.page.record("click %s", e.Selector())
	if effect := e.page.OnClick[e.selector]; effect != nil {
		effect(e.index)
	}
	return nil
}

func (e *fakeElement) Fill(value string) error {
	n, err := e.node()
	if err != nil {
		return err
	}
	e.page.record("fill %s=%s", e.Selector(), value)
	n.Value = value
	return nil
}

func (e *fakeElement) Clear() error {
	n, err := e.node()
	if err != nil {
		return err
	}
	e.page.record("clear %s", e.Selector())
	n.Value = ""
	return nil
}

func (e *fakeElement) SelectOption(value string) error {
	n, err := e.node()
	if err != nil {
		return err
	}
	e.page.record("select %s=%s", e.Selector(), value)
	n.Value = value
	return nil
}

func (e *fakeElement) ScrollIntoView() error {
	if _, err := e.node(); err != nil {
		return err
	}
	e.page.record("scroll %s", e.Selector())
	return nil
}

func (e *fakeElement) TextContent() (string, error) {
	n, err := e.node()
	if err != nil {
		return "", err
	}
	return n.Text, nil
}

func (e *fakeElement) InputValue() (string, error) {
	n, err := e.node()
	if err != nil {
		return "", err
	}
	return n.Value, nil
}

func (e *fakeElement) IsEnabled() (bool, error) {
	n, err := e.node()
	if err != nil {
		return false, err
	}
	return !n.Disabled, nil
}

func (e *fakeElement) Count() (int, error) {
	return len(e.page.Nodes[e.selector]), nil
}

func (e *fakeElement) ExpectVisible(timeout time.Duration) error {
	n, err := e.node()
	if err != nil {
		return err
	}
	if !n.Visible {
		return fmt.Errorf("%s is hidden", e.Selector())
	}
	return nil
}

func (e *fakeElement) ExpectText(text string, timeout time.Duration) error {
	n, err := e.node()
	if err != nil {
		return err
	}
	if strings.Join(strings.Fields(n.Text), " ") != strings.Join(strings.Fields(text), " ") {
		return fmt.Errorf("text is %q", n.Text)
	}
	return nil
}

func (e *fakeElement) ExpectCount(count int, timeout time.Duration) error {
	if actual := len(e.page.Nodes[e.selector]); actual != count {
		return fmt.Errorf("count is %d", actual)
	}
	return nil
}
