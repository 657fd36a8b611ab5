package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/catalog"
	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
)

// CartPage wraps the cart screen. Cart contents are a view over external
// system state, queried fresh per assertion; nothing is cached here.
type CartPage struct {
	site
}

// NewCart creates a cart page object bound to the given page handle.
func NewCart(page playwright.Page, baseURL string, timeout time.Duration) *CartPage {
	return &CartPage{site: newSite(page, baseURL, timeout)}
}

// Navigate loads the cart route directly. Requires an authenticated session
// on the page's browser context.
func (p *CartPage) Navigate() error {
	return p.goto_(flow.Route(flow.ScreenCart))
}

// VerifyLoaded asserts the cart screen is rendered.
func (p *CartPage) VerifyLoaded() error {
	return p.verifyHeader("Your Cart")
}

// ItemNames returns the line-item product names in display order.
func (p *CartPage) ItemNames() ([]string, error) {
	return p.allTexts(dataTest("inventory-item-name"), "cart line items")
}

// VerifyItems asserts the line items are exactly the given product names,
// irrespective of order.
func (p *CartPage) VerifyItems(want []string) error {
	got, err := p.ItemNames()
	if err != nil {
		return err
	}
	if !sameMultiset(got, want) {
		return errs.Mismatch("cart line items", fmt.Sprintf("%v", want), fmt.Sprintf("%v", got))
	}
	return nil
}

// BadgeCount reads the cart badge. An absent badge is zero.
func (p *CartPage) BadgeCount() (int, error) {
	return p.badgeCount()
}

// VerifyBadgeMatchesItems asserts the badge count and the line-item count
// agree, the invariant that catches a stale badge.
func (p *CartPage) VerifyBadgeMatchesItems() error {
	badge, err := p.badgeCount()
	if err != nil {
		return err
	}
	names, err := p.ItemNames()
	if err != nil {
		return err
	}
	if badge != len(names) {
		return errs.Mismatch("cart badge vs line items",
			fmt.Sprintf("badge %d == %d items", badge, badge),
			fmt.Sprintf("badge %d, %d items", badge, len(names)))
	}
	return nil
}

// RemoveItem removes a product from the cart.
func (p *CartPage) RemoveItem(id catalog.ProductID) error {
	return p.click(dataTest("remove-"+id.TestID()), fmt.Sprintf("remove %s", id))
}

// Checkout proceeds to the checkout information screen.
func (p *CartPage) Checkout() error {
	if err := p.click(dataTest("checkout"), "checkout button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenCheckoutInfo), p.timeoutMS)
}

// ContinueShopping returns to the inventory screen.
func (p *CartPage) ContinueShopping() error {
	if err := p.click(dataTest("continue-shopping"), "continue shopping button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), p.timeoutMS)
}
