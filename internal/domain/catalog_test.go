package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestFilterAndSort_TwoProducts(t *testing.T) {
	products := []Product{
		{ID: "A", Name: "A", PriceCents: 1000, Featured: true},
		{ID: "B", Name: "B", PriceCents: 500},
	}

	assert.Equal(t, []string{"A"}, productIDs(Filter(products, "a", CategoryAll)))

	byPrice, err := SortProducts(products, SortPriceLow)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, productIDs(byPrice))

	featured, err := SortProducts(products, SortFeatured)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, productIDs(featured))

	// input untouched
	assert.Equal(t, []string{"A", "B"}, productIDs(products))
}

func TestFilter_Products(t *testing.T) {
	products := []Product{
		{ID: "mug", Name: "Prompt Mug", Category: "drinkware", Tags: []string{"coffee"}},
		{ID: "tee", Name: "Neural Tee", Description: "Soft cotton", Category: "apparel"},
		{ID: "cap", Name: "LLM Cap", Category: "apparel", Tags: []string{"Summer"}},
	}

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"everything", "", CategoryAll, []string{"mug", "tee", "cap"}},
		{"empty category means all", "", "", []string{"mug", "tee", "cap"}},
		{"category facet", "", "apparel", []string{"tee", "cap"}},
		{"description match", "COTTON", CategoryAll, []string{"tee"}},
		{"tag match", "summer", "apparel", []string{"cap"}},
		{"query trimmed", "  mug ", CategoryAll, []string{"mug"}},
		{"facet and query disagree", "mug", "apparel", []string{}},
		{"unknown category", "", "books", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(Filter(products, tt.query, tt.category)))
		})
	}
}

func TestFilter_SitePages(t *testing.T) {
	pages := []SitePage{
		{Route: "home", Title: "Home", Section: "main"},
		{Route: "readiness-checklist", Title: "AI Readiness Checklist", Section: "tools", Keywords: []string{"assessment"}},
		{Route: "ethics-checker", Title: "Ethics Checker", Section: "tools"},
	}

	got := Filter(pages, "assess", CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "readiness-checklist", got[0].Route)

	tools := Filter(pages, "", "tools")
	assert.Len(t, tools, 2)

	// section is searchable as text too
	assert.Len(t, Filter(pages, "MAIN", CategoryAll), 1)
}

func TestSortProducts_Keys(t *testing.T) {
	products := []Product{
		{ID: "p1", PriceCents: 2000, Rating: 4.5},
		{ID: "p2", PriceCents: 1500, Rating: 4.9, New: true},
		{ID: "p3", PriceCents: 2000, Rating: 4.5, Featured: true},
		{ID: "p4", PriceCents: 900, Rating: 3.8, New: true},
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortFeatured, []string{"p3", "p1", "p2", "p4"}},
		{SortPriceLow, []string{"p4", "p2", "p1", "p3"}},
		{SortPriceHigh, []string{"p1", "p3", "p2", "p4"}},
		{SortRating, []string{"p2", "p1", "p3", "p4"}},
		{SortNew, []string{"p2", "p4", "p1", "p3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, err := SortProducts(products, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestSortProducts_UnknownKey(t *testing.T) {
	_, err := SortProducts(nil, "cheapest")
	assert.True(t, IsCode(err, CodeInvalidSortKey))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortFeatured, key)

	key, err = ParseSortKey("price-high")
	require.NoError(t, err)
	assert.Equal(t, SortPriceHigh, key)

	_, err = ParseSortKey("PRICE-HIGH")
	assert.True(t, IsCode(err, CodeInvalidSortKey))
}
