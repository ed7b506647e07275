// facets fetches a catalog and prints its derived filter dimensions: brand
// list and per-parent category counts. Handy when checking whether a new
// catalog source maps cleanly onto the configured category groups.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/samber/lo"

	"ushop/internal/catalog"
)

func main() {
	var url string
	var groupsPath string
	var timeoutSeconds int

	flag.StringVar(&url, "url", "https://dummyjson.com/products?limit=0", "Catalog URL to fetch")
	flag.StringVar(&groupsPath, "groups", "", "Category groups TOML (defaults to the embedded file)")
	flag.IntVar(&timeoutSeconds, "timeout", 20, "HTTP timeout in seconds")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	products, err := catalog.NewClient(url).Fetch(ctx)
	if err != nil {
		log.Fatalf("failed to fetch catalog: %v", err)
	}

	groups, err := catalog.LoadGroups(groupsPath)
	if err != nil {
		log.Fatalf("failed to load category groups: %v", err)
	}

	fmt.Printf("%d products\n\nBrands:\n", len(products))
	for _, brand := range catalog.Brands(products) {
		fmt.Printf("  %s\n", brand)
	}

	fmt.Println("\nCategory groups:")
	for _, c := range catalog.CategorySummary(products, groups) {
		fmt.Printf("  %-28s %d\n", c.Parent, c.Count)
	}

	mapped := groups.LeafSet(groups.Parents())
	unmapped := lo.Uniq(lo.FilterMap(products, func(p catalog.Product, _ int) (string, bool) {
		return p.Category, !mapped[p.Category]
	}))
	sort.Strings(unmapped)
	if len(unmapped) > 0 {
		fmt.Println("\nLeaf categories with no parent group:")
		for _, leaf := range unmapped {
			fmt.Printf("  %s\n", leaf)
		}
	}
}
