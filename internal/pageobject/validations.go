package pageobject

import (
	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
)

// Validations retry through the driver's assertion support until they pass or
// the assert timeout elapses, then fail with a *browser.AssertionFailure.

// ValidateElementVisible asserts the named element is visible
func (b *Base) ValidateElementVisible(name locator.Name) error {
	el := b.Locate(name)
	if err := el.ExpectVisible(b.opts.Timeouts.Assert); err != nil {
		return &browser.AssertionFailure{
			Check:    "visible",
			Target:   b.target(name),
			Expected: true,
			Actual:   false,
			Err:      err,
		}
	}
	return nil
}

// ValidateElementText asserts the named element's text equals text
func (b *Base) ValidateElementText(name locator.Name, text string) error {
	el := b.Locate(name)
	if err := el.ExpectText(text, b.opts.Timeouts.Assert); err != nil {
		return &browser.AssertionFailure{
			Check:    "text",
			Target:   b.target(name),
			Expected: text,
			Actual:   currentText(el),
			Err:      err,
		}
	}
	return nil
}

// ValidateElementCount asserts exactly count elements match name
func (b *Base) ValidateElementCount(name locator.Name, count int) error {
	el := b.Locate(name)
	if err := el.ExpectCount(count, b.opts.Timeouts.Assert); err != nil {
		actual, countErr := el.Count()
		if countErr != nil {
			actual = -1
		}
		return &browser.AssertionFailure{
			Check:    "count",
			Target:   b.target(name),
			Expected: count,
			Actual:   actual,
			Err:      err,
		}
	}
	return nil
}

// ValidateURL asserts the page URL matches a path template such as
// "/auth/login" or "**/account"
func (b *Base) ValidateURL(template string) error {
	if err := b.page.ExpectURL(browser.URLPattern(b.opts.BaseURL, template), b.opts.Timeouts.Assert); err != nil {
		return &browser.AssertionFailure{
			Check:    "url",
			Target:   b.registry.Owner(),
			Expected: template,
			Actual:   b.page.URL(),
			Err:      err,
		}
	}
	return nil
}

// ValidateURLContains asserts the page URL contains fragment
func (b *Base) ValidateURLContains(fragment string) error {
	if err := b.page.ExpectURL(browser.URLContains(fragment), b.opts.Timeouts.Assert); err != nil {
		return &browser.AssertionFailure{
			Check:    "url contains",
			Target:   b.registry.Owner(),
			Expected: fragment,
			Actual:   b.page.URL(),
			Err:      err,
		}
	}
	return nil
}

// ValidateTitle asserts the document title equals title
func (b *Base) ValidateTitle(title string) error {
	if err := b.page.ExpectTitle(title, b.opts.Timeouts.Assert); err != nil {
		actual, titleErr := b.page.Title()
		if titleErr != nil {
			actual = ""
		}
		return &browser.AssertionFailure{
			Check:    "title",
			Target:   b.registry.Owner(),
			Expected: title,
			Actual:   actual,
			Err:      err,
		}
	}
	return nil
}

func (b *Base) target(name locator.Name) string {
	return b.registry.Owner() + "." + string(name)
}

// currentText reads text for failure reports without waiting for an absent element
func currentText(el browser.Element) string {
	if n, err := el.Count(); err != nil || n == 0 {
		return "<absent>"
	}
	text, err := el.TextContent()
	if err != nil {
		return "<unreadable>"
	}
	return text
}
