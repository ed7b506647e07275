package catalog

import "github.com/samber/lo"

// CategoryCount is one "shop by category" tile: a configured parent, how many
// catalog products fall under it, and a representative thumbnail (first match,
// empty when the parent matched nothing).
type CategoryCount struct {
	Parent    string
	Count     int
	Thumbnail string
}

// Brands returns the distinct non-empty brand values across the catalog in
// order of first appearance.
func Brands(products []Product) []string {
	return lo.Uniq(lo.FilterMap(products, func(p Product, _ int) (string, bool) {
		return p.Brand, p.Brand != ""
	}))
}

// CategorySummary counts catalog products per configured parent category.
func CategorySummary(products []Product, groups *Groups) []CategoryCount {
	return lo.Map(groups.Parents(), func(parent string, _ int) CategoryCount {
		leafSet := groups.LeafSet([]string{parent})
		matched := lo.Filter(products, func(p Product, _ int) bool {
			return leafSet[p.Category]
		})

		summary := CategoryCount{Parent: parent, Count: len(matched)}
		if len(matched) > 0 {
			summary.Thumbnail = matched[0].Thumbnail
		}
		return summary
	})
}
