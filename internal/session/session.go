// Package session owns the per-page store: the catalog fetched for this page
// load, the persisted collections mirrored from storage, and the view state
// derived from both. Pages build a fresh Session instead of sharing globals;
// everything the render layer shows comes out of it.
package session

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"ushop/internal/cart"
	"ushop/internal/catalog"
	"ushop/internal/recent"
	"ushop/internal/storage"
	"ushop/internal/view"
	"ushop/internal/wishlist"
)

// CatalogFetcher is the remote catalog collaborator: one GET per page load.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]catalog.Product, error)
}

type Options struct {
	PageSize       int
	RecentLimit    int
	SuggestedCount int
}

type Session struct {
	Catalog  *catalog.Store
	Groups   *catalog.Groups
	View     *view.State
	Cart     *cart.Engine
	Wishlist *wishlist.Engine
	Recent   *recent.Engine

	suggested []catalog.ID
}

// New blocks on the catalog fetch, then loads the persisted collections and
// initializes the view to the full catalog. A failed or unparseable fetch
// comes back wrapping catalog.ErrUnavailable so every page can render the
// dedicated unavailable state instead of an empty catalog.
func New(ctx context.Context, fetcher CatalogFetcher, store storage.Store, groups *catalog.Groups, opts Options) (*Session, error) {
	products, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if opts.PageSize < 1 {
		opts.PageSize = view.DefaultPageSize
	}
	if opts.SuggestedCount < 1 {
		opts.SuggestedCount = 10
	}

	cat := catalog.NewStore(products)
	s := &Session{
		Catalog:  cat,
		Groups:   groups,
		View:     view.NewState(cat.Products(), opts.PageSize),
		Cart:     cart.Load(store),
		Wishlist: wishlist.Load(store),
		Recent:   recent.Load(store, opts.RecentLimit),
	}
	s.suggested = pickSuggested(cat.Products(), opts.SuggestedCount)
	return s, nil
}

// ApplyFilters recomputes the active list from the full catalog with AND
// composition and lands on page 1.
func (s *Session) ApplyFilters(criteria view.Criteria) {
	s.View.SetList(view.Apply(s.Catalog.Products(), s.Groups, criteria))
}

// Search switches to free-text mode; an empty term restores the unfiltered
// catalog. Either way the cursor resets to page 1.
func (s *Session) Search(term string) {
	s.View.SetList(view.Search(s.Catalog.Products(), term))
}

// FilterByParent shows one parent category's products, the "shop by category"
// banner action. Unknown parents leave the view untouched.
func (s *Session) FilterByParent(parent string) {
	if !s.Groups.Known(parent) {
		return
	}
	s.ApplyFilters(view.Criteria{Parents: []string{parent}})
}

// AddToCart snapshots the product into the cart; unknown ids no-op.
func (s *Session) AddToCart(id catalog.ID) error {
	return s.Cart.Add(s.Catalog, id)
}

// MoveToCart is the wishlist card action: add to cart, then drop the id from
// the wishlist.
func (s *Session) MoveToCart(id catalog.ID) error {
	if !s.Catalog.Contains(id) {
		return nil
	}
	if err := s.Cart.Add(s.Catalog, id); err != nil {
		return err
	}
	if s.Wishlist.Contains(id) {
		if _, err := s.Wishlist.Toggle(id); err != nil {
			return err
		}
	}
	return nil
}

// RecordView notes a product visit for the recently-viewed strip. Ids the
// catalog doesn't know are ignored rather than persisted as dead entries.
func (s *Session) RecordView(id catalog.ID) error {
	if !s.Catalog.Contains(id) {
		return nil
	}
	return s.Recent.Record(id)
}

// RecentlyViewed resolves the recently-viewed ids most recent first, skipping
// any id the current catalog no longer carries.
func (s *Session) RecentlyViewed() []catalog.Product {
	return s.resolve(s.Recent.Display())
}

// WishlistProducts resolves wishlist ids in insertion order.
func (s *Session) WishlistProducts() []catalog.Product {
	return s.resolve(s.Wishlist.IDs())
}

// Suggested is the session's random product sample for the suggestion strip,
// stable for the lifetime of the page.
func (s *Session) Suggested() []catalog.Product {
	return s.resolve(s.suggested)
}

func (s *Session) resolve(ids []catalog.ID) []catalog.Product {
	return lo.FilterMap(ids, func(id catalog.ID, _ int) (catalog.Product, bool) {
		product, err := s.Catalog.FindByID(id)
		return product, err == nil
	})
}

func pickSuggested(products []catalog.Product, n int) []catalog.ID {
	if n > len(products) {
		n = len(products)
	}
	ids := make([]catalog.ID, 0, n)
	for _, i := range rand.Perm(len(products))[:n] {
		ids = append(ids, products[i].ID)
	}
	return ids
}
