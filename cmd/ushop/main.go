package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ushop/internal/catalog"
	"ushop/internal/config"
	"ushop/internal/view"
)

func main() {
	var search string
	var categories bool
	var serve bool
	var addr string
	var help bool

	flag.StringVar(&search, "search", "", "Search the catalog from the terminal")
	flag.StringVar(&search, "s", "", "Search the catalog (short form)")
	flag.BoolVar(&categories, "categories", false, "Print the shop-by-category summary")
	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if serve {
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if search != "" || categories {
		if err := runQuery(cfg, search, categories); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	showHelp()
	os.Exit(1)
}

func runQuery(cfg *config.Config, search string, categories bool) error {
	ctx := context.Background()

	products, err := catalog.NewClient(cfg.Catalog.URL).Fetch(ctx)
	if err != nil {
		return err
	}

	if categories {
		groups, err := catalog.LoadGroups(cfg.Catalog.GroupsPath)
		if err != nil {
			return err
		}
		for _, c := range catalog.CategorySummary(products, groups) {
			fmt.Printf("- %s: %d products\n", c.Parent, c.Count)
		}
		return nil
	}

	matches := view.Search(products, search)
	fmt.Printf("%d of %d products match %q:\n", len(matches), len(products), search)
	for _, p := range matches {
		fmt.Printf("- [%s] %s ($%.2f, %s)\n", p.ID, p.Title, p.Price, p.AvailabilityStatus)
	}
	return nil
}

func showHelp() {
	fmt.Println(`ushop - storefront server and catalog tool

Usage:
  ushop -serve [-addr :8080]    Run the storefront
  ushop -search TERM            Search the catalog from the terminal
  ushop -categories             Print the shop-by-category summary

Environment:
  CATALOG_URL            Catalog source (default dummyjson products)
  DATA_DIR               Directory for persisted collections (default ./data)
  CATEGORY_GROUPS_PATH   Optional category groups TOML override
  RECENT_LIMIT           Recently-viewed cap (default 5)`)
}
