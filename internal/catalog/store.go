package catalog

import "errors"

var ErrNotFound = errors.New("product not found")

// Store holds the fetched catalog for one page session. Populated once,
// never mutated; every view is derived from it.
type Store struct {
	products []Product
	byID     map[ID]int
}

func NewStore(products []Product) *Store {
	byID := make(map[ID]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Store{
		products: products,
		byID:     byID,
	}
}

// Products returns the full catalog in source order. Callers must not mutate
// the returned slice.
func (s *Store) Products() []Product {
	return s.products
}

func (s *Store) Len() int {
	return len(s.products)
}

func (s *Store) FindByID(id ID) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.products[i], nil
}

func (s *Store) Contains(id ID) bool {
	_, ok := s.byID[id]
	return ok
}
