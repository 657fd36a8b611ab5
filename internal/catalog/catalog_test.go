package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCatalog_SixUniqueProducts(t *testing.T) {
	t.Parallel()

	all := Products()
	require.Len(t, all, 6)

	names := map[string]bool{}
	slugs := map[string]bool{}
	detailIDs := map[int]bool{}
	for _, p := range all {
		assert.False(t, names[p.Name], "duplicate name %q", p.Name)
		names[p.Name] = true

		slug := p.ID.TestID()
		require.NotEmpty(t, slug, "product %q has no test identifier", p.ID)
		assert.False(t, slugs[slug], "duplicate test identifier %q", slug)
		slugs[slug] = true

		assert.False(t, detailIDs[p.DetailID], "duplicate detail id %d", p.DetailID)
		detailIDs[p.DetailID] = true

		assert.Positive(t, p.PriceCents)
		assert.NotEmpty(t, p.Description)
	}
}

func TestByName_RoundtripsEveryProduct(t *testing.T) {
	t.Parallel()

	for _, p := range Products() {
		got, ok := ByName(p.Name)
		require.True(t, ok, "ByName(%q)", p.Name)
		assert.Equal(t, p, got)

		byID, ok := ByID(p.ID)
		require.True(t, ok, "ByID(%q)", p.ID)
		assert.Equal(t, p, byID)
	}

	_, ok := ByName("Sauce Labs Teleporter")
	assert.False(t, ok)
	_, ok = ByID(ProductID("teleporter"))
	assert.False(t, ok)
	assert.Empty(t, ProductID("teleporter").TestID())
}

func TestParsePrice_RenderedForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"$29.99", 2999},
		{"$7.99", 799},
		{"$0.00", 0},
		{"Item total: $37.98", 3798},
		{"Tax: $2.37", 237},
		{"Total: $40.35", 4035},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		require.NoError(t, err, "ParsePrice(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParsePrice(%q)", tc.in)
	}

	for _, bad := range []string{"", "29.99", "$29", "$29.9", "$-1.00", "$xx.yy"} {
		_, err := ParsePrice(bad)
		assert.Error(t, err, "ParsePrice(%q)", bad)
	}
}

func TestFormatParse_Roundtrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.IntRange(0, 1_000_000).Draw(t, "cents")
		got, err := ParsePrice(FormatPrice(cents))
		if err != nil {
			t.Fatalf("roundtrip of %d cents failed: %v", cents, err)
		}
		if got != cents {
			t.Fatalf("roundtrip of %d cents gave %d", cents, got)
		}
	})
}

func TestTotals_TaxRoundsHalfUpToCents(t *testing.T) {
	t.Parallel()

	backpack, _ := ByID(Backpack)
	onesie, _ := ByID(Onesie)
	items := []Product{backpack, onesie}

	subtotal, tax, total := Totals(items, 0.0625)
	assert.Equal(t, 3798, subtotal)
	assert.Equal(t, 237, tax) // 237.375 rounds down
	assert.Equal(t, 4035, total)

	// The live fixture system applies 8%.
	_, tax8, total8 := Totals(items, 0.08)
	assert.Equal(t, 304, tax8) // 303.84 rounds up
	assert.Equal(t, 4102, total8)

	subEmpty, taxEmpty, totalEmpty := Totals(nil, 0.0625)
	assert.Zero(t, subEmpty)
	assert.Zero(t, taxEmpty)
	assert.Zero(t, totalEmpty)
}

func TestTotals_SubtotalIsOrderIndependent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.SampledFrom(IDs()), 0, 12).Draw(t, "ids")
		items := make([]Product, 0, len(ids))
		for _, id := range ids {
			p, ok := ByID(id)
			if !ok {
				t.Fatalf("catalog lost product %q", id)
			}
			items = append(items, p)
		}

		reversed := make([]Product, len(items))
		for i, p := range items {
			reversed[len(items)-1-i] = p
		}

		s1, t1, g1 := Totals(items, 0.0625)
		s2, t2, g2 := Totals(reversed, 0.0625)
		if s1 != s2 || t1 != t2 || g1 != g2 {
			t.Fatalf("totals changed under reordering: (%d,%d,%d) vs (%d,%d,%d)", s1, t1, g1, s2, t2, g2)
		}
	})
}
