package view

import "ushop/internal/catalog"

const DefaultPageSize = 9

// Page slices one display page out of list. Pages past the end come back
// empty rather than erroring.
func Page(list []catalog.Product, pageNumber, pageSize int) []catalog.Product {
	if pageNumber < 1 || pageSize < 1 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(list) {
		return nil
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// TotalPages is never below 1, even for an empty list; the pager always has
// something to display.
func TotalPages(listLen, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (listLen + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// State is the current filtered list plus the pagination cursor. The list is
// a view over the catalog store, never an independent copy of its products.
type State struct {
	list     []catalog.Product
	page     int
	pageSize int
}

func NewState(list []catalog.Product, pageSize int) *State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &State{list: list, page: 1, pageSize: pageSize}
}

// SetList replaces the active list and invalidates the prior cursor: every
// successful filter or search lands back on page 1.
func (s *State) SetList(list []catalog.Product) {
	s.list = list
	s.page = 1
}

func (s *State) List() []catalog.Product {
	return s.list
}

func (s *State) Len() int {
	return len(s.list)
}

func (s *State) CurrentPage() int {
	return s.page
}

func (s *State) PageSize() int {
	return s.pageSize
}

func (s *State) TotalPages() int {
	return TotalPages(len(s.list), s.pageSize)
}

// CurrentItems is the slice of the active list shown on the current page.
func (s *State) CurrentItems() []catalog.Product {
	return Page(s.list, s.page, s.pageSize)
}

// Navigation clamps silently; past-the-end moves are no-ops.

func (s *State) Next() {
	if s.page < s.TotalPages() {
		s.page++
	}
}

func (s *State) Prev() {
	if s.page > 1 {
		s.page--
	}
}

func (s *State) First() {
	s.page = 1
}

func (s *State) Last() {
	s.page = s.TotalPages()
}

// GoTo jumps to a page, clamped into [1, TotalPages].
func (s *State) GoTo(page int) {
	if page < 1 {
		page = 1
	}
	if max := s.TotalPages(); page > max {
		page = max
	}
	s.page = page
}
