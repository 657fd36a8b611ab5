package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/catalog"
	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
)

// ProductDetailPage wraps a single product's detail screen.
type ProductDetailPage struct {
	site
}

// NewProductDetail creates a product detail page object bound to the given
// page handle.
func NewProductDetail(page playwright.Page, baseURL string, timeout time.Duration) *ProductDetailPage {
	return &ProductDetailPage{site: newSite(page, baseURL, timeout)}
}

// Navigate loads the detail route for a product directly. Requires an
// authenticated session on the page's browser context.
func (p *ProductDetailPage) Navigate(id catalog.ProductID) error {
	prod, ok := catalog.ByID(id)
	if !ok {
		return errs.New(errs.Internal, fmt.Sprintf("unknown product %q", id))
	}
	return p.goto_(fmt.Sprintf("%s?id=%d", flow.Route(flow.ScreenProductDetail), prod.DetailID))
}

// VerifyProduct asserts the rendered name, price, and description match the
// catalog record.
func (p *ProductDetailPage) VerifyProduct(prod catalog.Product) error {
	if err := p.waitVisible(dataTest("inventory-item-name"), "product name"); err != nil {
		return err
	}

	name, err := p.textOf(dataTest("inventory-item-name"), "product name")
	if err != nil {
		return err
	}
	if name != prod.Name {
		return errs.Mismatch("product name", fmt.Sprintf("%q", prod.Name), fmt.Sprintf("%q", name))
	}

	priceText, err := p.textOf(dataTest("inventory-item-price"), "product price")
	if err != nil {
		return err
	}
	cents, err := catalog.ParsePrice(priceText)
	if err != nil {
		return errs.Mismatch("product price", "a currency amount", fmt.Sprintf("%q", priceText))
	}
	if cents != prod.PriceCents {
		return errs.Mismatch("product price", prod.Price(), catalog.FormatPrice(cents))
	}

	desc, err := p.textOf(dataTest("inventory-item-desc"), "product description")
	if err != nil {
		return err
	}
	if desc != prod.Description {
		return errs.Mismatch("product description", fmt.Sprintf("%q", prod.Description), fmt.Sprintf("%q", desc))
	}
	return nil
}

// AddToCart clicks the detail screen's add button.
func (p *ProductDetailPage) AddToCart() error {
	return p.click(dataTest("add-to-cart"), "add to cart button")
}

// RemoveFromCart clicks the detail screen's remove button.
func (p *ProductDetailPage) RemoveFromCart() error {
	return p.click(dataTest("remove"), "remove button")
}

// BadgeCount reads the cart badge. An absent badge is zero.
func (p *ProductDetailPage) BadgeCount() (int, error) {
	return p.badgeCount()
}

// BackToProducts returns to the inventory screen.
func (p *ProductDetailPage) BackToProducts() error {
	if err := p.click(dataTest("back-to-products"), "back to products button"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenInventory), p.timeoutMS)
}
