package session

import (
	"ushop/internal/cart"
	"ushop/internal/catalog"
)

// Header is the badge state every page shows: distinct cart lines and
// wishlist size.
type Header struct {
	CartCount      int
	WishlistCount  int
	WishlistActive bool
}

func (s *Session) Header() Header {
	wishCount := s.Wishlist.Count()
	return Header{
		CartCount:      s.Cart.Count(),
		WishlistCount:  wishCount,
		WishlistActive: wishCount > 0,
	}
}

// ListingPage is the data contract the listing view renders from.
type ListingPage struct {
	Header      Header
	Items       []catalog.Product
	NoResults   bool
	CurrentPage int
	TotalPages  int
	Parents     []string
	Brands      []string
	Categories  []catalog.CategoryCount
	Recent      []catalog.Product
	Suggested   []catalog.Product
}

// InitListing resets the view to the full catalog and assembles the listing
// page: facets, category tiles, recently viewed and suggestions included.
func (s *Session) InitListing() ListingPage {
	s.View.SetList(s.Catalog.Products())
	return s.Listing()
}

// Listing assembles the listing page for the current view state, whatever
// filter, search or pagination produced it.
func (s *Session) Listing() ListingPage {
	products := s.Catalog.Products()
	return ListingPage{
		Header:      s.Header(),
		Items:       s.View.CurrentItems(),
		NoResults:   s.View.Len() == 0,
		CurrentPage: s.View.CurrentPage(),
		TotalPages:  s.View.TotalPages(),
		Parents:     s.Groups.Parents(),
		Brands:      catalog.Brands(products),
		Categories:  catalog.CategorySummary(products, s.Groups),
		Recent:      s.RecentlyViewed(),
		Suggested:   s.Suggested(),
	}
}

// DetailPage is the detail view's data contract. NotFound is a terminal
// rendered state, not an error.
type DetailPage struct {
	Header   Header
	NotFound bool
	Product  catalog.Product
	Price    catalog.PriceInfo
	Stars    catalog.Stars
	Wished   bool
	Recent   []catalog.Product
}

// InitDetail looks the product up and records the view. Unknown ids yield
// the not-found page state.
func (s *Session) InitDetail(id catalog.ID) (DetailPage, error) {
	product, err := s.Catalog.FindByID(id)
	if err != nil {
		return DetailPage{Header: s.Header(), NotFound: true}, nil
	}

	if err := s.RecordView(id); err != nil {
		return DetailPage{}, err
	}

	return DetailPage{
		Header:  s.Header(),
		Product: product,
		Price:   catalog.GetPriceInfo(product.Price, product.DiscountPercentage),
		Stars:   catalog.RatingStars(product.Rating),
		Wished:  s.Wishlist.Contains(id),
		Recent:  s.RecentlyViewed(),
	}, nil
}

// CartPage is the cart view's data contract.
type CartPage struct {
	Header  Header
	Lines   []cart.Line
	Summary cart.Summary
	Empty   bool
}

func (s *Session) InitCart() CartPage {
	lines := s.Cart.Lines()
	return CartPage{
		Header:  s.Header(),
		Lines:   lines,
		Summary: s.Cart.Summary(),
		Empty:   len(lines) == 0,
	}
}

// WishlistPage is the wishlist view's data contract.
type WishlistPage struct {
	Header Header
	Items  []catalog.Product
	Empty  bool
	Recent []catalog.Product
}

func (s *Session) InitWishlist() WishlistPage {
	items := s.WishlistProducts()
	return WishlistPage{
		Header: s.Header(),
		Items:  items,
		Empty:  len(items) == 0,
		Recent: s.RecentlyViewed(),
	}
}
