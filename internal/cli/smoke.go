package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/components"
	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/pageobject"
	"github.com/adyen/storefront-ui/internal/pages"
)

// ErrSmokeFailed is returned by RunSmoke when at least one check failed
var ErrSmokeFailed = errors.New("smoke checks failed")

// Credentials submitted by the invalid-login check
const (
	invalidEmail    = "invalid@example.com"
	invalidPassword = "invalid"
)

// SmokeCheck is one named check run against a live storefront
type SmokeCheck struct {
	Name string
	Run  func(page browser.Page, opts pageobject.Options) error
}

// SmokeResult records the outcome of one check
type SmokeResult struct {
	Name   string
	Passed bool
	Error  string
}

// SmokeRunner runs checks in order against one browser page, reporting each
// outcome as it finishes. A failing check does not stop the ones after it.
type SmokeRunner struct {
	page    browser.Page
	opts    pageobject.Options
	out     io.Writer
	results []SmokeResult
}

// NewSmokeRunner creates a runner writing one line per check to out
func NewSmokeRunner(page browser.Page, opts pageobject.Options, out io.Writer) *SmokeRunner {
	return &SmokeRunner{
		page: page,
		opts: opts,
		out:  out,
	}
}

// Run executes check and records its result
func (r *SmokeRunner) Run(check SmokeCheck) {
	result := SmokeResult{Name: check.Name}
	logger := r.logger().WithField("check", check.Name)

	if err := check.Run(r.page, r.opts); err != nil {
		result.Error = err.Error()
		logger.WithError(err).Warn("Smoke check failed")
		fmt.Fprintf(r.out, "FAIL  %s: %v\n", check.Name, err)
	} else {
		result.Passed = true
		logger.Debug("Smoke check passed")
		fmt.Fprintf(r.out, "PASS  %s\n", check.Name)
	}

	r.results = append(r.results, result)
}

// Results returns the outcome of every check run so far, in order
func (r *SmokeRunner) Results() []SmokeResult {
	return r.results
}

// AllPassed reports whether every check run so far passed
func (r *SmokeRunner) AllPassed() bool {
	for _, result := range r.results {
		if !result.Passed {
			return false
		}
	}
	return true
}

func (r *SmokeRunner) logger() logrus.FieldLogger {
	if r.opts.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.opts.Logger
}

// DefaultSmokeChecks returns the built-in checks. They assume an anonymous
// visitor with an empty cart, so they must run in a fresh session. With an
// account, a sign-in round trip is checked too; it signs out again so the
// checks after it still see an anonymous visitor.
func DefaultSmokeChecks(account *config.Credentials) []SmokeCheck {
	checks := []SmokeCheck{
		{Name: "home page loads", Run: checkHomeLoaded},
		{Name: "navigation is visible", Run: checkNavigationVisible},
		{Name: "cart starts empty", Run: checkCartEmpty},
		{Name: "login page loads", Run: checkLoginLoaded},
		{Name: "invalid login shows an error", Run: checkInvalidLogin},
	}
	if account != nil {
		checks = append(checks, SmokeCheck{Name: "valid login reaches account", Run: checkValidLogin(*account)})
	}
	return append(checks, SmokeCheck{Name: "category navigation", Run: checkCategoryNavigation})
}

func checkHomeLoaded(page browser.Page, opts pageobject.Options) error {
	home := pages.NewHomePage(page, opts)
	if err := home.Navigate(); err != nil {
		return err
	}
	return home.ValidateHomePageLoaded()
}

func checkNavigationVisible(page browser.Page, opts pageobject.Options) error {
	return components.NewNavigation(page, opts).ValidateNavigationVisible()
}

func checkCartEmpty(page browser.Page, opts pageobject.Options) error {
	return components.NewNavigation(page, opts).ValidateCartCount(0)
}

func checkLoginLoaded(page browser.Page, opts pageobject.Options) error {
	login := pages.NewLoginPage(page, opts)
	if err := login.Navigate(); err != nil {
		return err
	}
	return login.ValidateLoginPageLoaded()
}

func checkInvalidLogin(page browser.Page, opts pageobject.Options) error {
	login := pages.NewLoginPage(page, opts)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login(invalidEmail, invalidPassword, false); err != nil {
		return err
	}
	if err := login.ValidateURL(pages.LoginPath); err != nil {
		return err
	}
	if login.ErrorMessage() == "" {
		return errors.New("no error shown after an invalid login")
	}
	return nil
}

func checkValidLogin(account config.Credentials) func(browser.Page, pageobject.Options) error {
	return func(page browser.Page, opts pageobject.Options) error {
		login := pages.NewLoginPage(page, opts)
		nav := components.NewNavigation(page, opts)

		if err := login.Navigate(); err != nil {
			return err
		}
		if err := login.Login(account.Email, account.Password, false); err != nil {
			return err
		}
		if err := login.ValidateLoginSuccess(); err != nil {
			return err
		}
		if err := nav.ValidateUserLoggedIn(); err != nil {
			return err
		}
		if err := nav.Logout(); err != nil {
			return err
		}
		return nav.ValidateUserLoggedOut()
	}
}

func checkCategoryNavigation(page browser.Page, opts pageobject.Options) error {
	home := pages.NewHomePage(page, opts)
	if err := home.Navigate(); err != nil {
		return err
	}
	if err := home.SelectCategory(pages.CategoryHandTools); err != nil {
		return err
	}
	return home.ValidateURLContains("/category/" + pages.CategoryHandTools)
}

// RunSmoke opens a fresh session on driver, runs checks and reports each
// result to out. It returns ErrSmokeFailed when any check failed.
func RunSmoke(driver browser.Driver, opts pageobject.Options, checks []SmokeCheck, out io.Writer) error {
	session, err := driver.NewSession()
	if err != nil {
		return fmt.Errorf("failed to open browser session: %w", err)
	}
	defer session.Close()

	runner := NewSmokeRunner(session.Page(), opts, out)
	for _, check := range checks {
		runner.Run(check)
	}

	passed := 0
	for _, result := range runner.Results() {
		if result.Passed {
			passed++
		}
	}
	fmt.Fprintf(out, "%d/%d checks passed\n", passed, len(checks))

	if !runner.AllPassed() {
		return ErrSmokeFailed
	}
	return nil
}
