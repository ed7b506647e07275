package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ushop/internal/catalog"
)

func makeProducts(n int) []catalog.Product {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{ID: catalog.ID(fmt.Sprint(i + 1))}
	}
	return products
}

func TestPageSlicing(t *testing.T) {
	list := makeProducts(20)

	assert.Len(t, Page(list, 1, 9), 9)
	assert.Len(t, Page(list, 2, 9), 9)
	assert.Len(t, Page(list, 3, 9), 2)
	assert.Empty(t, Page(list, 4, 9), "pages past the end are empty, not an error")
	assert.Empty(t, Page(list, 0, 9))
	assert.Empty(t, Page(nil, 1, 9))
}

func TestTotalPagesMinimumOne(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 3, TotalPages(20, 9))
}

func TestStateNavigationClamps(t *testing.T) {
	s := NewState(makeProducts(20), 9)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 3, s.TotalPages())

	s.Prev()
	assert.Equal(t, 1, s.CurrentPage(), "prev on page 1 is a no-op")

	s.Next()
	s.Next()
	s.Next()
	assert.Equal(t, 3, s.CurrentPage(), "next past the last page is a no-op")

	s.First()
	assert.Equal(t, 1, s.CurrentPage())
	s.Last()
	assert.Equal(t, 3, s.CurrentPage())

	s.GoTo(99)
	assert.Equal(t, 3, s.CurrentPage())
	s.GoTo(-4)
	assert.Equal(t, 1, s.CurrentPage())
}

func TestSetListResetsCursor(t *testing.T) {
	s := NewState(makeProducts(20), 9)
	s.Last()
	assert.Equal(t, 3, s.CurrentPage())

	s.SetList(makeProducts(5))
	assert.Equal(t, 1, s.CurrentPage(), "a new filter result lands on page 1")
	assert.Equal(t, 1, s.TotalPages())
	assert.Len(t, s.CurrentItems(), 5)
}

func TestEmptyListStillHasOnePage(t *testing.T) {
	s := NewState(nil, 9)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 1, s.TotalPages())
	assert.Empty(t, s.CurrentItems())
}
