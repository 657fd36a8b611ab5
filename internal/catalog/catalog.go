// Package catalog mirrors the storefront's fixed six-item product catalog and
// the money rules the overview screen renders. The suite never trusts scraped
// numbers; expected values are always recomputed from these records.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProductID identifies a catalog product. Test identifiers are looked up from
// a fixed table rather than derived from display names, so a copy change on
// the storefront fails loudly here instead of silently bending selectors.
type ProductID string

const (
	Backpack     ProductID = "backpack"
	BikeLight    ProductID = "bike-light"
	BoltTShirt   ProductID = "bolt-t-shirt"
	FleeceJacket ProductID = "fleece-jacket"
	Onesie       ProductID = "onesie"
	RedTShirt    ProductID = "red-t-shirt"
)

// testIDs maps each product to the stable test-identifier slug the storefront
// embeds in its add/remove button attributes and item links.
var testIDs = map[ProductID]string{
	Backpack:     "sauce-labs-backpack",
	BikeLight:    "sauce-labs-bike-light",
	BoltTShirt:   "sauce-labs-bolt-t-shirt",
	FleeceJacket: "sauce-labs-fleece-jacket",
	Onesie:       "sauce-labs-onesie",
	RedTShirt:    "test.allthethings()-t-shirt-(red)",
}

// TestID returns the product's stable test-identifier slug, or "" for an
// unknown product.
func (id ProductID) TestID() string {
	return testIDs[id]
}

// Product is a read-only catalog record.
type Product struct {
	ID          ProductID
	Name        string
	Description string
	PriceCents  int
	// DetailID is the numeric id the product-detail route takes as a query
	// parameter. Assigned by the storefront, not contiguous with any order.
	DetailID int
}

// Price returns the rendered fixed-point currency string.
func (p Product) Price() string {
	return FormatPrice(p.PriceCents)
}

var products = []Product{
	{
		ID:          Backpack,
		Name:        "Sauce Labs Backpack",
		Description: "carry.allTheThings() with the sleek, streamlined Sly Pack that melds uncompromising style with unequaled laptop and tablet protection.",
		PriceCents:  2999,
		DetailID:    4,
	},
	{
		ID:          BikeLight,
		Name:        "Sauce Labs Bike Light",
		Description: "A red light isn't the desired state in testing but it sure helps when riding your bike at night. Water-resistant with 3 lighting modes, 1 AAA battery included.",
		PriceCents:  999,
		DetailID:    0,
	},
	{
		ID:          BoltTShirt,
		Name:        "Sauce Labs Bolt T-Shirt",
		Description: "Get your testing superhero on with the Sauce Labs bolt T-shirt. From American Apparel, 100% ringspun combed cotton, heather gray with red bolt.",
		PriceCents:  1599,
		DetailID:    1,
	},
	{
		ID:          FleeceJacket,
		Name:        "Sauce Labs Fleece Jacket",
		Description: "It's not every day that you come across a midweight quarter-zip fleece jacket capable of handling everything from a relaxing day outdoors to a busy day at the office.",
		PriceCents:  4999,
		DetailID:    5,
	},
	{
		ID:          Onesie,
		Name:        "Sauce Labs Onesie",
		Description: "Rib snap infant onesie for the junior automation engineer in development. Reinforced 3-snap bottom closure, two-needle hemmed sleeved and bottom won't unravel.",
		PriceCents:  799,
		DetailID:    2,
	},
	{
		ID:          RedTShirt,
		Name:        "Test.allTheThings() T-Shirt (Red)",
		Description: "This classic Sauce Labs t-shirt is perfect to wear when cozying up to your keyboard to automate a few tests. Super-soft and comfy ringspun combed cotton.",
		PriceCents:  1599,
		DetailID:    3,
	},
}

// Products returns a copy of the fixed catalog.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// IDs returns every ProductID in catalog order.
func IDs() []ProductID {
	out := make([]ProductID, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

// ByID looks a product up by its ProductID.
func ByID(id ProductID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByName looks a product up by display name. Name uniquely identifies a
// product within the catalog.
func ByName(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// ParsePrice parses a rendered "$NN.NN" currency string into cents. A leading
// label ("Item total: $37.98") is tolerated; everything before the dollar sign
// is ignored.
func ParsePrice(s string) (int, error) {
	idx := strings.IndexByte(s, '$')
	if idx < 0 {
		return 0, fmt.Errorf("no currency amount in %q", s)
	}
	amount := strings.TrimSpace(s[idx+1:])
	whole, frac, ok := strings.Cut(amount, ".")
	if !ok || len(frac) != 2 {
		return 0, fmt.Errorf("malformed currency amount in %q", s)
	}
	dollars, err := strconv.Atoi(whole)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("malformed dollar amount in %q", s)
	}
	centsPart, err := strconv.Atoi(frac)
	if err != nil || centsPart < 0 {
		return 0, fmt.Errorf("malformed cents amount in %q", s)
	}
	return dollars*100 + centsPart, nil
}

// FormatPrice renders cents as "$NN.NN".
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// SubtotalCents sums unit prices of the given items.
func SubtotalCents(items []Product) int {
	total := 0
	for _, p := range items {
		total += p.PriceCents
	}
	return total
}

// Totals computes the expected subtotal, tax, and total in cents for the
// given cart items at the given tax rate. Tax rounds half-up to the cent.
func Totals(items []Product, rate float64) (subtotal, tax, total int) {
	subtotal = SubtotalCents(items)
	tax = int(math.Floor(float64(subtotal)*rate + 0.5))
	total = subtotal + tax
	return subtotal, tax, total
}
