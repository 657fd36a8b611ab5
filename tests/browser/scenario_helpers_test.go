package browser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuitang/storefront-e2e/internal/catalog"
)

func firstCatalogProduct(t *testing.T) catalog.Product {
	t.Helper()
	all := catalog.Products()
	require.NotEmpty(t, all)
	return all[0]
}

// pickProducts returns the first n catalog products.
func pickProducts(t *testing.T, n int) []catalog.Product {
	t.Helper()
	all := catalog.Products()
	require.GreaterOrEqual(t, len(all), n)
	return all[:n]
}

func productNames(items []catalog.Product) []string {
	names := make([]string, len(items))
	for i, p := range items {
		names[i] = p.Name
	}
	return names
}
