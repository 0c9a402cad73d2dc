package pageobject

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
)

// Every action waits once for its target to become visible and then interacts
// exactly once. A visibility timeout aborts the action with ErrElementNotVisible.

// Click clicks the named element
func (b *Base) Click(name locator.Name) error {
	el := b.Locate(name)
	return b.act("Click", name, el, el.Click)
}

// ClickNth clicks the index-th element matched by name
func (b *Base) ClickNth(name locator.Name, index int) error {
	el := b.Locate(name).Nth(index)
	return b.act("Click", name, el, el.Click)
}

// FillText replaces the named field's content with text
func (b *Base) FillText(name locator.Name, text string) error {
	el := b.Locate(name)
	return b.act("Fill", name, el, func() error {
		return el.Fill(text)
	})
}

// ClearText empties the named field
func (b *Base) ClearText(name locator.Name) error {
	el := b.Locate(name)
	return b.act("Clear", name, el, el.Clear)
}

// SelectOption selects the option with the given value in the named select
func (b *Base) SelectOption(name locator.Name, option string) error {
	el := b.Locate(name)
	return b.act("SelectOption", name, el, func() error {
		return el.SelectOption(option)
	})
}

// ScrollIntoView scrolls the named element into the viewport
func (b *Base) ScrollIntoView(name locator.Name) error {
	el := b.Locate(name)
	return b.act("ScrollIntoView", name, el, el.ScrollIntoView)
}

// Text returns the named element's trimmed text once it is visible
func (b *Base) Text(name locator.Name) (string, error) {
	el := b.Locate(name)

	var text string
	err := b.act("TextContent", name, el, func() error {
		var err error
		text, err = el.TextContent()
		return err
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// InputValue returns the named field's current value without waiting
func (b *Base) InputValue(name locator.Name) (string, error) {
	value, err := b.Locate(name).InputValue()
	if err != nil {
		return "", fmt.Errorf("reading value of %s: %w", name, err)
	}
	return value, nil
}

// IsEnabled reports whether the named control accepts interaction
func (b *Base) IsEnabled(name locator.Name) (bool, error) {
	enabled, err := b.Locate(name).IsEnabled()
	if err != nil {
		return false, fmt.Errorf("checking %s enabled: %w", name, err)
	}
	return enabled, nil
}

// Count returns how many elements currently match name, without waiting
func (b *Base) Count(name locator.Name) (int, error) {
	n, err := b.Locate(name).Count()
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", name, err)
	}
	return n, nil
}

// WaitForElement waits up to timeout for the named element to become visible
func (b *Base) WaitForElement(name locator.Name, timeout time.Duration) error {
	return b.waitVisible(name, b.Locate(name), timeout)
}

// IsElementVisible probes the named element with the short probe timeout.
// A timeout yields false; it never fails.
func (b *Base) IsElementVisible(name locator.Name) bool {
	el := b.Locate(name)
	if err := el.WaitVisible(b.opts.Timeouts.Probe); err != nil {
		b.log.WithFields(logrus.Fields{
			"locator":  name,
			"selector": el.Selector(),
		}).Debug("Probe: not visible")
		return false
	}
	return true
}

func (b *Base) act(action string, name locator.Name, el browser.Element, do func() error) error {
	b.log.WithFields(logrus.Fields{
		"locator":  name,
		"selector": el.Selector(),
	}).Debugf("Locator:%s", action)

	if err := b.waitVisible(name, el, b.opts.Timeouts.Action); err != nil {
		return err
	}
	if err := do(); err != nil {
		return fmt.Errorf("%s %s: %w", strings.ToLower(action), name, err)
	}
	return nil
}

func (b *Base) waitVisible(name locator.Name, el browser.Element, timeout time.Duration) error {
	if err := el.WaitVisible(timeout); err != nil {
		return fmt.Errorf("%w: %s %s (%s) within %s: %w",
			browser.ErrElementNotVisible, b.registry.Owner(), name, el.Selector(), timeout, err)
	}
	return nil
}
