// Package view derives what the storefront currently displays from the
// immutable catalog: filter and search results plus the pagination cursor.
package view

import (
	"strings"

	"github.com/samber/lo"

	"ushop/internal/catalog"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64
	Max float64
}

// Criteria compose with AND semantics. A nil/empty field is a pass-through,
// not an exclusion.
type Criteria struct {
	Parents   []string
	Price     *PriceRange
	MinRating *float64
	Brands    []string
}

func (c Criteria) Empty() bool {
	return len(c.Parents) == 0 && c.Price == nil && c.MinRating == nil && len(c.Brands) == 0
}

// Apply narrows the catalog by each non-empty criterion in sequence.
// Zero matches is a valid result, not an error.
func Apply(products []catalog.Product, groups *catalog.Groups, c Criteria) []catalog.Product {
	filtered := products

	if len(c.Parents) > 0 {
		leafSet := groups.LeafSet(c.Parents)
		filtered = lo.Filter(filtered, func(p catalog.Product, _ int) bool {
			return leafSet[p.Category]
		})
	}

	if c.Price != nil {
		filtered = lo.Filter(filtered, func(p catalog.Product, _ int) bool {
			return p.Price >= c.Price.Min && p.Price <= c.Price.Max
		})
	}

	if c.MinRating != nil {
		filtered = lo.Filter(filtered, func(p catalog.Product, _ int) bool {
			return p.Rating >= *c.MinRating
		})
	}

	if len(c.Brands) > 0 {
		brands := lo.SliceToMap(c.Brands, func(b string) (string, bool) { return b, true })
		filtered = lo.Filter(filtered, func(p catalog.Product, _ int) bool {
			return brands[p.Brand]
		})
	}

	return filtered
}

// Search is the free-text mode, mutually exclusive with Apply: a
// case-insensitive substring match over title, category and description.
// An empty term means the unfiltered catalog.
func Search(products []catalog.Product, term string) []catalog.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	return lo.Filter(products, func(p catalog.Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	})
}
