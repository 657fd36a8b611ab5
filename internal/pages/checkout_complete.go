package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
)

const orderConfirmationText = "Thank you for your order!"

// CheckoutCompletePage wraps the order confirmation screen.
type CheckoutCompletePage struct {
	site
}

// NewCheckoutComplete creates a confirmation page object bound to the given
// page handle.
func NewCheckoutComplete(page playwright.Page, baseURL string, timeout time.Duration) *CheckoutCompletePage {
	return &CheckoutCompletePage{site: newSite(page, baseURL, timeout)}
}

// VerifyComplete asserts the confirmation screen is rendered with its
// thank-you header and no lingering cart badge.
func (p *CheckoutCompletePage) VerifyComplete() error {
	if err := p.verifyHeader("Checkout: Complete!"); err != nil {
		return err
	}
	got, err := p.textOf(dataTest("complete-header"), "confirmation header")
	if err != nil {
		return err
	}
	if !strings.Contains(got, orderConfirmationText) {
		return errs.Mismatch("confirmation header",
			fmt.Sprintf("text containing %q", orderConfirmationText),
			fmt.Sprintf("%q", got))
	}
	return p.verifyBadge(0)
}

// BackHome returns to the inventory screen.
func (p *CheckoutCompletePage) BackHome() error {
	if err := p.click(dataTest("back-to-products"), "back home button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), p.timeoutMS)
}
