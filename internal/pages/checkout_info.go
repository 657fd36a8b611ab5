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

// CheckoutField names a required checkout form field, spelled the way the
// storefront's validation errors spell it.
type CheckoutField string

const (
	FieldFirstName  CheckoutField = "First Name"
	FieldLastName   CheckoutField = "Last Name"
	FieldPostalCode CheckoutField = "Postal Code"
)

// RequiredMessage is the validation text the storefront renders when the
// field is left empty.
func (f CheckoutField) RequiredMessage() string {
	return string(f) + " is required"
}

// CheckoutInfoPage wraps the checkout information form.
type CheckoutInfoPage struct {
	site
}

// NewCheckoutInfo creates a checkout information page object bound to the
// given page handle.
func NewCheckoutInfo(page playwright.Page, baseURL string, timeout time.Duration) *CheckoutInfoPage {
	return &CheckoutInfoPage{site: newSite(page, baseURL, timeout)}
}

// Navigate loads the checkout information route directly. Requires an
// authenticated session on the page's browser context.
func (p *CheckoutInfoPage) Navigate() error {
	return p.goto_(flow.Route(flow.ScreenCheckoutInfo))
}

// VerifyLoaded asserts the information form is rendered.
func (p *CheckoutInfoPage) VerifyLoaded() error {
	if err := p.verifyHeader("Checkout: Your Information"); err != nil {
		return err
	}
	return p.waitVisible(dataTest("firstName"), "first name field")
}

// Fill enters the checkout record. Empty fields are skipped rather than
// cleared; partial records are valid inputs used to provoke validation.
func (p *CheckoutInfoPage) Fill(info testdata.CheckoutInfo) error {
	fields := []struct {
		id    string
		what  string
		value string
	}{
		{"firstName", "first name field", info.FirstName},
		{"lastName", "last name field", info.LastName},
		{"postalCode", "postal code field", info.PostalCode},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := p.fill(dataTest(f.id), f.what, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Continue submits the form. It does not wait for the outcome; follow with
// an overview verification or VerifyFieldError depending on the path under
// test.
func (p *CheckoutInfoPage) Continue() error {
	return p.click(dataTest("continue"), "continue button")
}

// Cancel abandons checkout and returns to the inventory screen.
func (p *CheckoutInfoPage) Cancel() error {
	if err := p.click(dataTest("cancel"), "cancel button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), p.timeoutMS)
}

// VerifyFieldError asserts the validation banner names the missing field and
// that the form did not advance.
func (p *CheckoutInfoPage) VerifyFieldError(field CheckoutField) error {
	if err := p.waitVisible(dataTest("error"), "validation banner"); err != nil {
		return err
	}
	got, err := p.textOf(dataTest("error"), "validation banner")
	if err != nil {
		return err
	}
	if !strings.Contains(got, field.RequiredMessage()) {
		return errs.Mismatch("validation banner",
			fmt.Sprintf("text containing %q", field.RequiredMessage()),
			fmt.Sprintf("%q", got))
	}
	return p.verifyHeader("Checkout: Your Information")
}
