package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ushop/internal/catalog"
)

func testGroups(t *testing.T) *catalog.Groups {
	t.Helper()
	groups, err := catalog.LoadGroups("")
	require.NoError(t, err)
	return groups
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Title: "Red Lipstick", Category: "beauty", Brand: "Essence", Price: 100, Rating: 4.5, Description: "matte finish"},
		{ID: "2", Title: "Gaming Laptop", Category: "laptops", Brand: "Asus", Price: 50, DiscountPercentage: 50, Rating: 3.2, Description: "portable power"},
		{ID: "3", Title: "Desk Lamp", Category: "home-decoration", Brand: "", Price: 25, Rating: 4.9, Description: "warm light"},
	}
}

func TestApplyAllCriteriaEmptyReturnsFullCatalog(t *testing.T) {
	products := testProducts()
	got := Apply(products, testGroups(t), Criteria{})
	assert.Equal(t, products, got, "empty criteria are a pass-through, order preserved")
}

func TestApplyComposesWithAND(t *testing.T) {
	products := testProducts()
	groups := testGroups(t)

	rating := 4.0
	got := Apply(products, groups, Criteria{
		Parents:   []string{"Beauty & Personal Care", "Home & Living"},
		MinRating: &rating,
	})
	require.Len(t, got, 2)
	assert.Equal(t, catalog.ID("1"), got[0].ID)
	assert.Equal(t, catalog.ID("3"), got[1].ID)

	// adding a price range narrows further
	got = Apply(products, groups, Criteria{
		Parents:   []string{"Beauty & Personal Care", "Home & Living"},
		MinRating: &rating,
		Price:     &PriceRange{Min: 50, Max: 150},
	})
	require.Len(t, got, 1)
	assert.Equal(t, catalog.ID("1"), got[0].ID)
}

func TestApplyBrandMembership(t *testing.T) {
	got := Apply(testProducts(), testGroups(t), Criteria{Brands: []string{"Asus"}})
	require.Len(t, got, 1)
	assert.Equal(t, catalog.ID("2"), got[0].ID)
}

func TestApplyMinRatingZeroKeepsEverything(t *testing.T) {
	rating := 0.0
	got := Apply(testProducts(), testGroups(t), Criteria{MinRating: &rating})
	assert.Len(t, got, 3)
}

func TestApplyZeroMatchesIsValid(t *testing.T) {
	got := Apply(testProducts(), testGroups(t), Criteria{Parents: []string{"Groceries"}})
	assert.Empty(t, got)
}

func TestSearchMatchesTitleCategoryDescription(t *testing.T) {
	products := testProducts()

	assert.Len(t, Search(products, "LAPTOP"), 1, "case-insensitive title/category match")
	assert.Len(t, Search(products, "warm light"), 1, "description match")
	assert.Empty(t, Search(products, "nomatch"))
}

func TestSearchEmptyTermResetsToFullCatalog(t *testing.T) {
	products := testProducts()
	assert.Equal(t, products, Search(products, "   "))
}
