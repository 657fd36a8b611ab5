package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
	"github.com/kuitang/storefront-e2e/internal/testdata"
)

const (
	lockedOutMessage   = "Sorry, this user has been locked out"
	unknownUserMessage = "Epic sadface"
)

// LoginPage wraps the unauthenticated entry screen.
type LoginPage struct {
	site
}

// NewLogin creates a login page object bound to the given page handle.
func NewLogin(page playwright.Page, baseURL string, timeout time.Duration) *LoginPage {
	return &LoginPage{site: newSite(page, baseURL, timeout)}
}

// Navigate loads the login route directly.
func (p *LoginPage) Navigate() error {
	return p.goto_(flow.Route(flow.ScreenLogin))
}

// VerifyLoaded asserts the login form is rendered.
func (p *LoginPage) VerifyLoaded() error {
	for _, field := range []struct{ id, what string }{
		{"username", "username field"},
		{"password", "password field"},
		{"login-button", "login button"},
	} {
		if err := p.waitVisible(dataTest(field.id), field.what); err != nil {
			return err
		}
	}
	return nil
}

// Login submits the given credentials. It does not wait for the outcome;
// follow with WaitForInventory or an error verification depending on the
// path under test.
func (p *LoginPage) Login(creds testdata.Credentials) error {
	if err := p.fill(dataTest("username"), "username field", creds.Username); err != nil {
		return err
	}
	if err := p.fill(dataTest("password"), "password field", creds.Password); err != nil {
		return err
	}
	return p.click(dataTest("login-button"), "login button")
}

// WaitForInventory blocks until the inventory screen appears. A zero timeout
// uses the default. The override exists for exactly one documented case: the
// performance-glitch account logs in well after the default window.
func (p *LoginPage) WaitForInventory(timeout time.Duration) error {
	ms := p.timeoutMS
	if timeout > 0 {
		ms = float64(timeout.Milliseconds())
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), ms)
}

// ErrorText returns the rendered error banner text.
func (p *LoginPage) ErrorText() (string, error) {
	if err := p.waitVisible(dataTest("error"), "login error banner"); err != nil {
		return "", err
	}
	return p.textOf(dataTest("error"), "login error banner")
}

// VerifyError asserts the error banner contains the given text.
func (p *LoginPage) VerifyError(substr string) error {
	got, err := p.ErrorText()
	if err != nil {
		return err
	}
	if !strings.Contains(got, substr) {
		return errs.Mismatch("login error banner", fmt.Sprintf("text containing %q", substr), fmt.Sprintf("%q", got))
	}
	return nil
}

// VerifyLockedOut asserts the locked-out account's specific rejection.
func (p *LoginPage) VerifyLockedOut() error {
	return p.VerifyError(lockedOutMessage)
}

// VerifyUnknownUser asserts the generic rejection shown for credentials that
// match no fixture account.
func (p *LoginPage) VerifyUnknownUser() error {
	return p.VerifyError(unknownUserMessage)
}
