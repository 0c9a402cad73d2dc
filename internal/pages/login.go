package pages

import (
	"errors"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/pageobject"
)

// LoginPath is the login page URL template
const LoginPath = "/auth/login"

// AccountPath is where a successful login lands
const AccountPath = "**/account"

// ErrFormNotEmpty is returned when a credential field still holds text
var ErrFormNotEmpty = errors.New("form fields are not empty")

// Login page locator names
const (
	LoginEmailInput         locator.Name = "emailInput"
	LoginPasswordInput      locator.Name = "passwordInput"
	LoginButton             locator.Name = "loginButton"
	LoginRegisterLink       locator.Name = "registerLink"
	LoginForgotPasswordLink locator.Name = "forgotPasswordLink"
	LoginErrorMessage       locator.Name = "errorMessage"
	LoginSuccessMessage     locator.Name = "successMessage"
	LoginRememberMe         locator.Name = "rememberMeCheckbox"
	LoginShowPassword       locator.Name = "showPasswordToggle"
	LoginBackToHome         locator.Name = "backToHomeLink"
)

var loginRegistry = locator.NewRegistry("login",
	locator.Define(LoginEmailInput, "email"),
	locator.Define(LoginPasswordInput, "password"),
	locator.Define(LoginButton, "login-submit"),
	locator.Define(LoginRegisterLink, "register-link"),
	locator.Define(LoginForgotPasswordLink, "forgot-password"),
	locator.Define(LoginErrorMessage, "login-error"),
	locator.Define(LoginSuccessMessage, "login-success"),
	locator.Define(LoginRememberMe, "remember-me"),
	locator.Define(LoginShowPassword, "show-password"),
	locator.Define(LoginBackToHome, "nav-home"),
)

// LoginRegistry returns the login page's locator registry
func LoginRegistry() locator.Registry {
	return loginRegistry
}

// LoginPage is the sign-in form
type LoginPage struct {
	*pageobject.Base
}

// NewLoginPage creates a login page object bound to page
func NewLoginPage(page browser.Page, opts pageobject.Options) *LoginPage {
	return &LoginPage{
		Base: pageobject.New(page, LoginPath, loginRegistry, opts),
	}
}

// Login replaces both credential fields, optionally ticks remember-me, submits
// and waits for the resulting page to settle
func (p *LoginPage) Login(email, password string, rememberMe bool) error {
	if err := p.FillText(LoginEmailInput, email); err != nil {
		return err
	}
	if err := p.FillText(LoginPasswordInput, password); err != nil {
		return err
	}
	if rememberMe {
		if err := p.Click(LoginRememberMe); err != nil {
			return err
		}
	}
	if err := p.Click(LoginButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// NavigateToRegister follows the registration link
func (p *LoginPage) NavigateToRegister() error {
	if err := p.Click(LoginRegisterLink); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// NavigateToForgotPassword follows the password reset link
func (p *LoginPage) NavigateToForgotPassword() error {
	if err := p.Click(LoginForgotPasswordLink); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// TogglePasswordVisibility flips the password field between masked and plain
func (p *LoginPage) TogglePasswordVisibility() error {
	return p.Click(LoginShowPassword)
}

// ClearLoginForm empties both credential fields
func (p *LoginPage) ClearLoginForm() error {
	if err := p.ClearText(LoginEmailInput); err != nil {
		return err
	}
	return p.ClearText(LoginPasswordInput)
}

// ErrorMessage returns the error banner text, or "" when no banner is shown
func (p *LoginPage) ErrorMessage() string {
	return p.optionalText(LoginErrorMessage)
}

// SuccessMessage returns the success banner text, or "" when no banner is shown
func (p *LoginPage) SuccessMessage() string {
	return p.optionalText(LoginSuccessMessage)
}

func (p *LoginPage) optionalText(name locator.Name) string {
	if !p.IsElementVisible(name) {
		return ""
	}
	text, err := p.Text(name)
	if err != nil {
		p.Logger().WithError(err).WithField("locator", name).Debug("banner vanished before it was read")
		return ""
	}
	return text
}

// ValidateLoginPageLoaded asserts both fields and the submit button are shown
func (p *LoginPage) ValidateLoginPageLoaded() error {
	for _, name := range []locator.Name{LoginEmailInput, LoginPasswordInput, LoginButton} {
		if err := p.ValidateElementVisible(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLoginError asserts the error banner shows expected
func (p *LoginPage) ValidateLoginError(expected string) error {
	if err := p.ValidateElementVisible(LoginErrorMessage); err != nil {
		return err
	}
	return p.ValidateElementText(LoginErrorMessage, expected)
}

// ValidateLoginSuccess asserts the browser landed on the account page
func (p *LoginPage) ValidateLoginSuccess() error {
	return p.ValidateURL(AccountPath)
}

// ValidateEmptyFields fails with ErrFormNotEmpty if either field holds text
func (p *LoginPage) ValidateEmptyFields() error {
	email, err := p.InputValue(LoginEmailInput)
	if err != nil {
		return err
	}
	password, err := p.InputValue(LoginPasswordInput)
	if err != nil {
		return err
	}
	if email != "" || password != "" {
		return ErrFormNotEmpty
	}
	return nil
}
