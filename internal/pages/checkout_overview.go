package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/catalog"
	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
)

// CheckoutOverviewPage wraps the order summary screen. Expected totals are
// always recomputed from catalog prices and compared against the rendered
// text; this layer never trusts scraped numbers as their own oracle.
type CheckoutOverviewPage struct {
	site
}

// NewCheckoutOverview creates an overview page object bound to the given
// page handle.
func NewCheckoutOverview(page playwright.Page, baseURL string, timeout time.Duration) *CheckoutOverviewPage {
	return &CheckoutOverviewPage{site: newSite(page, baseURL, timeout)}
}

// VerifyLoaded asserts the overview screen is rendered.
func (p *CheckoutOverviewPage) VerifyLoaded() error {
	return p.verifyHeader("Checkout: Overview")
}

// ItemNames returns the line-item product names in display order.
func (p *CheckoutOverviewPage) ItemNames() ([]string, error) {
	return p.allTexts(dataTest("inventory-item-name"), "overview line items")
}

// VerifyItems asserts the line items are exactly the given product names,
// irrespective of order.
func (p *CheckoutOverviewPage) VerifyItems(want []string) error {
	got, err := p.ItemNames()
	if err != nil {
		return err
	}
	if !sameMultiset(got, want) {
		return errs.Mismatch("overview line items", fmt.Sprintf("%v", want), fmt.Sprintf("%v", got))
	}
	return nil
}

// BadgeCount reads the cart badge. An absent badge is zero.
func (p *CheckoutOverviewPage) BadgeCount() (int, error) {
	return p.badgeCount()
}

// SubtotalCents reads the rendered item total.
func (p *CheckoutOverviewPage) SubtotalCents() (int, error) {
	return p.moneyLabel("subtotal-label", "item total")
}

// TaxCents reads the rendered tax.
func (p *CheckoutOverviewPage) TaxCents() (int, error) {
	return p.moneyLabel("tax-label", "tax")
}

// TotalCents reads the rendered grand total.
func (p *CheckoutOverviewPage) TotalCents() (int, error) {
	return p.moneyLabel("total-label", "total")
}

func (p *CheckoutOverviewPage) moneyLabel(id, what string) (int, error) {
	text, err := p.textOf(dataTest(id), what+" label")
	if err != nil {
		return 0, err
	}
	cents, err := catalog.ParsePrice(text)
	if err != nil {
		return 0, errs.Mismatch(what+" label", "a currency amount", fmt.Sprintf("%q", text))
	}
	return cents, nil
}

// VerifyTotals recomputes expected subtotal, tax, and total from the given
// cart items and asserts each rendered value matches.
func (p *CheckoutOverviewPage) VerifyTotals(items []catalog.Product, taxRate float64) error {
	wantSubtotal, wantTax, wantTotal := catalog.Totals(items, taxRate)

	checks := []struct {
		what string
		read func() (int, error)
		want int
	}{
		{"item total", p.SubtotalCents, wantSubtotal},
		{"tax", p.TaxCents, wantTax},
		{"total", p.TotalCents, wantTotal},
	}
	for _, c := range checks {
		got, err := c.read()
		if err != nil {
			return err
		}
		if got != c.want {
			return errs.Mismatch(c.what, catalog.FormatPrice(c.want), catalog.FormatPrice(got))
		}
	}
	return nil
}

// Finish places the order. Successful checkout empties the cart as an
// externally observable side effect.
func (p *CheckoutOverviewPage) Finish() error {
	if err := p.click(dataTest("finish"), "finish button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenCheckoutComplete), p.timeoutMS)
}

// Cancel abandons the order and returns to the inventory screen, keeping the
// cart intact.
func (p *CheckoutOverviewPage) Cancel() error {
	if err := p.click(dataTest("cancel"), "cancel button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), p.timeoutMS)
}
