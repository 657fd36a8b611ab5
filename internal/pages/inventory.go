package pages

import (
	"fmt"
	"sort"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/catalog"
	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/flow"
)

// SortOrder is a value of the inventory sort selector.
type SortOrder string

const (
	SortNameAsc   SortOrder = "az"
	SortNameDesc  SortOrder = "za"
	SortPriceAsc  SortOrder = "lohi"
	SortPriceDesc SortOrder = "hilo"
)

// SortOrders returns every selectable order.
func SortOrders() []SortOrder {
	return []SortOrder{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}
}

// InventoryPage wraps the product catalog screen.
type InventoryPage struct {
	site
}

// NewInventory creates an inventory page object bound to the given page handle.
func NewInventory(page playwright.Page, baseURL string, timeout time.Duration) *InventoryPage {
	return &InventoryPage{site: newSite(page, baseURL, timeout)}
}

// Navigate loads the inventory route directly. Requires an authenticated
// session on the page's browser context.
func (p *InventoryPage) Navigate() error {
	return p.goto_(flow.Route(flow.ScreenInventory))
}

// VerifyLoaded asserts the catalog screen is rendered.
func (p *InventoryPage) VerifyLoaded() error {
	if err := p.verifyHeader("Products"); err != nil {
		return err
	}
	return p.waitVisible(dataTest("inventory-list"), "inventory list")
}

// AddToCart clicks the product's add button.
func (p *InventoryPage) AddToCart(id catalog.ProductID) error {
	return p.click(dataTest("add-to-cart-"+id.TestID()), fmt.Sprintf("add %s to cart", id))
}

// RemoveFromCart clicks the product's remove button.
func (p *InventoryPage) RemoveFromCart(id catalog.ProductID) error {
	return p.click(dataTest("remove-"+id.TestID()), fmt.Sprintf("remove %s from cart", id))
}

// BadgeCount reads the cart badge. An absent badge is zero, not an error.
func (p *InventoryPage) BadgeCount() (int, error) {
	return p.badgeCount()
}

// VerifyBadge asserts the badge shows the expected count; zero means the
// badge must be absent entirely.
func (p *InventoryPage) VerifyBadge(want int) error {
	return p.verifyBadge(want)
}

// Sort selects a sort order on the catalog.
func (p *InventoryPage) Sort(order SortOrder) error {
	values := []string{string(order)}
	_, err := p.page.Locator(dataTest("product-sort-container")).SelectOption(
		playwright.SelectOptionValues{Values: &values},
		playwright.LocatorSelectOptionOptions{Timeout: playwright.Float(p.timeoutMS)},
	)
	return classify(fmt.Sprintf("select sort order %s", order), err)
}

// ProductNames returns the rendered product names in display order.
func (p *InventoryPage) ProductNames() ([]string, error) {
	return p.allTexts(dataTest("inventory-item-name"), "product names")
}

// ProductPrices returns the rendered prices, in cents, in display order.
func (p *InventoryPage) ProductPrices() ([]int, error) {
	texts, err := p.allTexts(dataTest("inventory-item-price"), "product prices")
	if err != nil {
		return nil, err
	}
	prices := make([]int, len(texts))
	for i, text := range texts {
		cents, err := catalog.ParsePrice(text)
		if err != nil {
			return nil, errs.Mismatch("product price", "a currency amount", fmt.Sprintf("%q", text))
		}
		prices[i] = cents
	}
	return prices, nil
}

// VerifySorted asserts the rendered order matches the given sort.
func (p *InventoryPage) VerifySorted(order SortOrder) error {
	switch order {
	case SortNameAsc, SortNameDesc:
		names, err := p.ProductNames()
		if err != nil {
			return err
		}
		if !namesSorted(names, order == SortNameDesc) {
			return errs.Mismatch("product order", fmt.Sprintf("names sorted %s", order), fmt.Sprintf("%v", names))
		}
	case SortPriceAsc, SortPriceDesc:
		prices, err := p.ProductPrices()
		if err != nil {
			return err
		}
		if !pricesSorted(prices, order == SortPriceDesc) {
			return errs.Mismatch("product order", fmt.Sprintf("prices sorted %s", order), fmt.Sprintf("%v", prices))
		}
	default:
		return errs.New(errs.Internal, fmt.Sprintf("unknown sort order %q", order))
	}
	return nil
}

// VerifyCatalog asserts the rendered product names are exactly the fixed
// catalog, irrespective of order.
func (p *InventoryPage) VerifyCatalog() error {
	names, err := p.ProductNames()
	if err != nil {
		return err
	}
	want := make([]string, 0, len(catalog.Products()))
	for _, prod := range catalog.Products() {
		want = append(want, prod.Name)
	}
	if !sameMultiset(names, want) {
		return errs.Mismatch("catalog contents", fmt.Sprintf("%v", want), fmt.Sprintf("%v", names))
	}
	return nil
}

// OpenProduct clicks through to the product's detail screen.
func (p *InventoryPage) OpenProduct(id catalog.ProductID) error {
	prod, ok := catalog.ByID(id)
	if !ok {
		return errs.New(errs.Internal, fmt.Sprintf("unknown product %q", id))
	}
	link := dataTest(fmt.Sprintf("item-%d-title-link", prod.DetailID))
	if err := p.click(link, fmt.Sprintf("open %s", prod.Name)); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenProductDetail)+"*", p.timeoutMS)
}

// OpenCart navigates to the cart screen.
func (p *InventoryPage) OpenCart() error {
	if err := p.click(dataTest("shopping-cart-link"), "cart link"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenCart), p.timeoutMS)
}

// Logout opens the side menu and signs out, landing back on the login screen.
// The burger menu exposes element IDs rather than data-test attributes.
func (p *InventoryPage) Logout() error {
	if err := p.click("#react-burger-menu-btn", "menu button"); err != nil {
		return err
	}
	logoutLink := dataTest("logout-sidebar-link")
	if err := p.waitVisible(logoutLink, "logout link"); err != nil {
		return err
	}
	if err := p.click(logoutLink, "logout link"); err != nil {
		return err
	}
	return p.waitForPath(flow.Route(flow.ScreenLogin), p.timeoutMS)
}

func namesSorted(names []string, descending bool) bool {
	return sort.SliceIsSorted(names, func(i, j int) bool {
		if descending {
			return names[i] > names[j]
		}
		return names[i] < names[j]
	})
}

func pricesSorted(prices []int, descending bool) bool {
	return sort.SliceIsSorted(prices, func(i, j int) bool {
		if descending {
			return prices[i] > prices[j]
		}
		return prices[i] < prices[j]
	})
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}
