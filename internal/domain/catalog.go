package domain

import (
	"sort"
	"strings"
)

// CategoryAll matches every record in Filter.
const CategoryAll = "all"

// Searchable is a static catalog record that Filter can match.
type Searchable interface {
	// SearchFields returns the text fields matched against the query.
	SearchFields() []string
	// Facet returns the record's category for faceted filtering.
	Facet() string
}

// Product is a merchandise listing. Prices are integer cents.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price_cents"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Featured    bool     `json:"featured"`
	New         bool     `json:"new"`
	InStock     bool     `json:"in_stock"`
	Tags        []string `json:"tags"`
}

func (p Product) SearchFields() []string {
	return append([]string{p.Name, p.Description}, p.Tags...)
}

func (p Product) Facet() string { return p.Category }

// SitePage is a sitemap entry. Route is the opaque destination identifier
// handed to the client's navigation function.
type SitePage struct {
	Route       string   `json:"route"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Section     string   `json:"section"`
	Keywords    []string `json:"keywords"`
}

func (p SitePage) SearchFields() []string {
	return append([]string{p.Title, p.Description, p.Section}, p.Keywords...)
}

func (p SitePage) Facet() string { return p.Section }

// Filter keeps the records whose facet matches category and whose search
// fields contain query case-insensitively. Order is preserved.
func Filter[T Searchable](records []T, query, category string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if category != "" && category != CategoryAll && r.Facet() != category {
			continue
		}
		if q != "" && !containsQuery(r.SearchFields(), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsQuery(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortKey selects the product ordering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNew       SortKey = "new"
)

// SortKeys lists the accepted keys in display order.
var SortKeys = []SortKey{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNew}

// ParseSortKey validates a raw key. An empty key means featured.
func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return SortFeatured, nil
	}
	for _, k := range SortKeys {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", NewInvalidSortKeyError(raw)
}

// SortProducts returns a stably sorted copy; ties keep catalog order.
func SortProducts(products []Product, key SortKey) ([]Product, error) {
	var less func(a, b Product) bool
	switch key {
	case SortFeatured:
		less = func(a, b Product) bool { return a.Featured && !b.Featured }
	case SortPriceLow:
		less = func(a, b Product) bool { return a.PriceCents < b.PriceCents }
	case SortPriceHigh:
		less = func(a, b Product) bool { return a.PriceCents > b.PriceCents }
	case SortRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case SortNew:
		less = func(a, b Product) bool { return a.New && !b.New }
	default:
		return nil, NewInvalidSortKeyError(string(key))
	}

	out := make([]Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}
